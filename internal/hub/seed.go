package hub

import (
	"time"

	"github.com/google/uuid"

	"crm-backend/internal/domain"
)

// DemoSeed returns the demonstration notification set loaded at startup
// when notifications.seed_demo_data is enabled.
func DemoSeed() []domain.Notification {
	now := time.Now().UTC()
	return []domain.Notification{
		{
			ID:          uuid.NewString(),
			Type:        "customer",
			Title:       "New customer",
			Description: "Acme Corp signed up from the landing page",
			CreatedAt:   now.Add(-10 * time.Minute),
		},
		{
			ID:          uuid.NewString(),
			Type:        "contract",
			Title:       "Contract awaiting signature",
			Description: "Annual license renewal for Globex is still in draft",
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			Type:        "task",
			Title:       "Follow-up call due",
			Description: "Call Initech about the Q3 upsell proposal",
			CreatedAt:   now.Add(-26 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			Type:        "payment",
			Title:       "Payment received",
			Description: "Invoice #1042 was paid in full",
			CreatedAt:   now.Add(-3 * 24 * time.Hour),
			IsRead:      true,
		},
	}
}
