package domain

type CustomerStatus string

const (
	CustomerStatusLead     CustomerStatus = "LEAD"
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
)

type Customer struct {
	ID        int32          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Company   string         `json:"company"`
	Status    CustomerStatus `json:"status"`
	OwnerID   int32          `json:"owner_id"` // employee responsible for the account
	CreatedOn string         `json:"created_on"`
	UpdatedOn string         `json:"updated_on"`
}
