package service

import (
	"context"

	"crm-backend/internal/domain"
)

// Notifier is the slice of the notification hub that services raise domain
// events through.
type Notifier interface {
	Publish(typ, title, description string) domain.Notification
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) error
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	GetEmployee(ctx context.Context, id int32) (*domain.Employee, error)
	ListEmployees(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error)
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	DeleteEmployee(ctx context.Context, id int32) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, p *domain.Product) error
	GetProduct(ctx context.Context, id int32) (*domain.Product, error)
	ListProducts(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id int32) error
}

type ContractService interface {
	CreateContract(ctx context.Context, c *domain.Contract) error
	GetContract(ctx context.Context, id int32) (*domain.Contract, error)
	ListContracts(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	UpdateContractStatus(ctx context.Context, id int32, status domain.ContractStatus) error
	DeleteContract(ctx context.Context, id int32) error
}

type CampaignService interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id int32) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, page, pageSize int32) ([]domain.Campaign, int32, error)
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	LaunchCampaign(ctx context.Context, id int32) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id int32) error
}

type TaskService interface {
	CreateTask(ctx context.Context, t *domain.Task) error
	GetTask(ctx context.Context, id int32) (*domain.Task, error)
	ListTasks(ctx context.Context, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error)
	UpdateTask(ctx context.Context, t *domain.Task) error
	UpdateTaskStatus(ctx context.Context, id int32, status domain.TaskStatus) error
	DeleteTask(ctx context.Context, id int32) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.User, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type AnalyticsService interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendCampaignEmail(ctx context.Context, toEmail, toName, subject, body string) error
	SendTaskAssignmentEmail(ctx context.Context, toEmail, toName, taskTitle, dueOn string) error
}
