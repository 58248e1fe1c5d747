package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"crm-backend/internal/domain"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, search, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}
func (m *MockCustomerRepo) ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Employee), args.Get(1).(int32), args.Error(2)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEmployeeRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.Contract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractRepo) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockContractRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCampaignRepo
type MockCampaignRepo struct {
	mock.Mock
}

func (m *MockCampaignRepo) Create(ctx context.Context, c *domain.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCampaignRepo) GetByID(ctx context.Context, id int32) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}
func (m *MockCampaignRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Campaign, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Campaign), args.Get(1).(int32), args.Error(2)
}
func (m *MockCampaignRepo) ListDueForLaunch(ctx context.Context) ([]domain.Campaign, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Campaign), args.Error(1)
}
func (m *MockCampaignRepo) Update(ctx context.Context, c *domain.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCampaignRepo) UpdateStatus(ctx context.Context, id int32, status domain.CampaignStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockCampaignRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTaskRepo) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskRepo) List(ctx context.Context, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error) {
	args := m.Called(ctx, assigneeID, status, page, pageSize)
	return args.Get(0).([]domain.Task), args.Get(1).(int32), args.Error(2)
}
func (m *MockTaskRepo) ListDueWithin(ctx context.Context, hours int32) ([]domain.Task, error) {
	args := m.Called(ctx, hours)
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTaskRepo) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockTaskRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendCampaignEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	args := m.Called(ctx, toEmail, toName, subject, body)
	return args.Error(0)
}
func (m *MockEmailService) SendTaskAssignmentEmail(ctx context.Context, toEmail, toName, taskTitle, dueOn string) error {
	args := m.Called(ctx, toEmail, toName, taskTitle, dueOn)
	return args.Error(0)
}

// MockNotifier records published notifications
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Publish(typ, title, description string) domain.Notification {
	args := m.Called(typ, title, description)
	return args.Get(0).(domain.Notification)
}
