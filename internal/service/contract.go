package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

var ErrInvalidStatusTransition = errors.New("invalid contract status transition")

type contractService struct {
	contractRepo repository.ContractRepository
	customerRepo repository.CustomerRepository
	notifier     Notifier
}

func NewContractService(contractRepo repository.ContractRepository, customerRepo repository.CustomerRepository, notifier Notifier) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

func (s *contractService) CreateContract(ctx context.Context, c *domain.Contract) error {
	if _, err := s.customerRepo.GetByID(ctx, c.CustomerID); err != nil {
		return fmt.Errorf("customer lookup failed: %w", err)
	}
	if c.Status == "" {
		c.Status = domain.ContractStatusDraft
	}
	c.CommissionCents = int64(math.Round(float64(c.ValueCents) * c.CommissionRate))
	return s.contractRepo.Create(ctx, c)
}

func (s *contractService) GetContract(ctx context.Context, id int32) (*domain.Contract, error) {
	return s.contractRepo.GetByID(ctx, id)
}

func (s *contractService) ListContracts(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	return s.contractRepo.List(ctx, customerID, status, page, pageSize)
}

func (s *contractService) UpdateContractStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contract.Status == domain.ContractStatusCompleted || contract.Status == domain.ContractStatusCancelled {
		return ErrInvalidStatusTransition
	}
	if err := s.contractRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	if status == domain.ContractStatusSigned {
		s.notifier.Publish("contract", "Contract signed",
			fmt.Sprintf("Contract #%d was signed", id))
	}
	return nil
}

func (s *contractService) DeleteContract(ctx context.Context, id int32) error {
	return s.contractRepo.Delete(ctx, id)
}
