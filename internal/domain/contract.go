package domain

type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusSigned    ContractStatus = "SIGNED"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

type Contract struct {
	ID              int32          `json:"id"`
	CustomerID      int32          `json:"customer_id"`
	ProductID       int32          `json:"product_id"`
	EmployeeID      int32          `json:"employee_id"` // closing sales rep
	Status          ContractStatus `json:"status"`
	ValueCents      int64          `json:"value_cents"`
	CommissionRate  float64        `json:"commission_rate"`
	CommissionCents int64          `json:"commission_cents"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	CreatedOn       string         `json:"created_on"`
	UpdatedOn       string         `json:"updated_on"`
}
