package domain

import "time"

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

type Task struct {
	ID         int32        `json:"id"`
	Title      string       `json:"title"`
	Details    string       `json:"details"`
	Status     TaskStatus   `json:"status"`
	Priority   TaskPriority `json:"priority"`
	AssigneeID int32        `json:"assignee_id"`
	CustomerID int32        `json:"customer_id,omitempty"` // optional link to an account
	DueOn      time.Time    `json:"due_on"`
	CreatedOn  string       `json:"created_on"`
	UpdatedOn  string       `json:"updated_on"`
}
