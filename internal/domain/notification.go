package domain

import "time"

// Notification is an in-app alert shown in the admin header. Notifications
// live in memory only; a process restart resets them to the seed set.
type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // display category: "customer", "contract", "task", "payment"
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	IsRead      bool      `json:"isRead"`
}

// Summary holds the aggregate counts pushed to stream subscribers. It is
// recomputed from the live set on every request or broadcast, never stored.
type Summary struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	Read   int `json:"read"`
}
