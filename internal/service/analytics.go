package service

import (
	"context"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.analyticsRepo.GetDashboardStats(ctx)
}
