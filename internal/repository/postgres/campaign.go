package postgres

import (
	"context"
	"database/sql"
	"time"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type campaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	query := `INSERT INTO campaigns (name, description, status, segment, subject, body, budget_cents, start_date, end_date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Description, c.Status, c.Segment, c.Subject, c.Body,
		c.BudgetCents, c.StartDate, c.EndDate, now).Scan(&c.ID)
	if err != nil {
		return err
	}
	c.CreatedOn = now.Format(dateFormat)
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id int32) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	var startDate, endDate, createdOn time.Time
	query := `SELECT id, name, description, status, segment, subject, body, budget_cents, start_date, end_date, created_on
	          FROM campaigns WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Status, &c.Segment, &c.Subject, &c.Body,
		&c.BudgetCents, &startDate, &endDate, &createdOn)
	if err != nil {
		return nil, err
	}
	c.StartDate = startDate.Format(dateFormat)
	c.EndDate = endDate.Format(dateFormat)
	c.CreatedOn = createdOn.Format(dateFormat)
	return c, nil
}

func (r *campaignRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Campaign, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM campaigns`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, description, status, segment, subject, body, budget_cents, start_date, end_date, created_on
	          FROM campaigns ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		var startDate, endDate, createdOn time.Time
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.Segment, &c.Subject, &c.Body,
			&c.BudgetCents, &startDate, &endDate, &createdOn); err != nil {
			return nil, 0, err
		}
		c.StartDate = startDate.Format(dateFormat)
		c.EndDate = endDate.Format(dateFormat)
		c.CreatedOn = createdOn.Format(dateFormat)
		campaigns = append(campaigns, c)
	}
	return campaigns, count, rows.Err()
}

func (r *campaignRepository) ListDueForLaunch(ctx context.Context) ([]domain.Campaign, error) {
	query := `SELECT id, name, description, status, segment, subject, body, budget_cents, start_date, end_date, created_on
	          FROM campaigns WHERE status = $1 AND start_date <= $2`
	rows, err := r.db.QueryContext(ctx, query, domain.CampaignStatusScheduled, time.Now())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		var startDate, endDate, createdOn time.Time
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Status, &c.Segment, &c.Subject, &c.Body,
			&c.BudgetCents, &startDate, &endDate, &createdOn); err != nil {
			return nil, err
		}
		c.StartDate = startDate.Format(dateFormat)
		c.EndDate = endDate.Format(dateFormat)
		c.CreatedOn = createdOn.Format(dateFormat)
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	query := `UPDATE campaigns SET name = $1, description = $2, segment = $3, subject = $4, body = $5, budget_cents = $6, start_date = $7, end_date = $8
	          WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		c.Name, c.Description, c.Segment, c.Subject, c.Body, c.BudgetCents, c.StartDate, c.EndDate, c.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, id int32, status domain.CampaignStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE campaigns SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
