package repository

import (
	"context"

	"crm-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error)
	ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int32) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int32) (*domain.Employee, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int32) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int32) error
}

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error
	Delete(ctx context.Context, id int32) error
}

type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id int32) (*domain.Campaign, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Campaign, int32, error)
	ListDueForLaunch(ctx context.Context) ([]domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	UpdateStatus(ctx context.Context, id int32, status domain.CampaignStatus) error
	Delete(ctx context.Context, id int32) error
}

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int32) (*domain.Task, error)
	List(ctx context.Context, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error)
	ListDueWithin(ctx context.Context, hours int32) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error
	Delete(ctx context.Context, id int32) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type AnalyticsRepository interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
