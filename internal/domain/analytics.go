package domain

// DashboardStats backs the admin landing page.
type DashboardStats struct {
	TotalCustomers      int32 `json:"total_customers"`
	ActiveContracts     int32 `json:"active_contracts"`
	OpenTasks           int32 `json:"open_tasks"`
	RunningCampaigns    int32 `json:"running_campaigns"`
	ContractValueCents  int64 `json:"contract_value_cents"`
	CommissionDueCents  int64 `json:"commission_due_cents"`
}
