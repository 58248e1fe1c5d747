package domain

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusScheduled CampaignStatus = "SCHEDULED"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusFinished  CampaignStatus = "FINISHED"
)

type Campaign struct {
	ID          int32          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      CampaignStatus `json:"status"`
	// Segment selects target customers by status; empty means everyone.
	Segment     CustomerStatus `json:"segment,omitempty"`
	Subject     string         `json:"subject"`
	Body        string         `json:"body"`
	BudgetCents int64          `json:"budget_cents"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	CreatedOn   string         `json:"created_on"`
}
