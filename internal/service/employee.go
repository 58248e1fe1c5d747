package service

import (
	"context"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	if e.Role == "" {
		e.Role = domain.EmployeeRoleSales
	}
	return s.employeeRepo.Create(ctx, e)
}

func (s *employeeService) GetEmployee(ctx context.Context, id int32) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) ListEmployees(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error) {
	return s.employeeRepo.List(ctx, page, pageSize)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	return s.employeeRepo.Update(ctx, e)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id int32) error {
	return s.employeeRepo.Delete(ctx, id)
}
