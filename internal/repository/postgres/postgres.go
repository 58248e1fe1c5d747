package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"crm-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.EmployeeRepository
	repository.ProductRepository
	repository.ContractRepository
	repository.CampaignRepository
	repository.TaskRepository
	repository.UserRepository
	repository.AnalyticsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		CustomerRepository:  NewCustomerRepository(db),
		EmployeeRepository:  NewEmployeeRepository(db),
		ProductRepository:   NewProductRepository(db),
		ContractRepository:  NewContractRepository(db),
		CampaignRepository:  NewCampaignRepository(db),
		TaskRepository:      NewTaskRepository(db),
		UserRepository:      NewUserRepository(db),
		AnalyticsRepository: NewAnalyticsRepository(db),
	}
}

const dateFormat = "2006-01-02"
