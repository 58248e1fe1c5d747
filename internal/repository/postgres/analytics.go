package postgres

import (
	"context"
	"database/sql"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	query := `SELECT
	            (SELECT count(*) FROM customers),
	            (SELECT count(*) FROM contracts WHERE status = 'ACTIVE'),
	            (SELECT count(*) FROM tasks WHERE status != 'DONE'),
	            (SELECT count(*) FROM campaigns WHERE status = 'ACTIVE'),
	            (SELECT COALESCE(sum(value_cents), 0) FROM contracts WHERE status IN ('SIGNED', 'ACTIVE')),
	            (SELECT COALESCE(sum(commission_cents), 0) FROM contracts WHERE status IN ('SIGNED', 'ACTIVE'))`
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalCustomers,
		&stats.ActiveContracts,
		&stats.OpenTasks,
		&stats.RunningCampaigns,
		&stats.ContractValueCents,
		&stats.CommissionDueCents,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
