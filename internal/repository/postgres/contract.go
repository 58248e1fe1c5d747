package postgres

import (
	"context"
	"database/sql"
	"time"

	"crm-backend/internal/domain"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (customer_id, product_id, employee_id, status, value_cents, commission_rate, commission_cents, start_date, end_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		c.CustomerID, c.ProductID, c.EmployeeID, c.Status, c.ValueCents, c.CommissionRate,
		c.CommissionCents, c.StartDate, c.EndDate, now).Scan(&c.ID)
	if err != nil {
		logger.DatabaseError("INSERT", "contracts", err, "customer_id", c.CustomerID)
		return err
	}
	c.CreatedOn = now.Format(dateFormat)
	c.UpdatedOn = c.CreatedOn
	return nil
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	c := &domain.Contract{}
	var startDate, endDate, createdOn, updatedOn time.Time
	query := `SELECT id, customer_id, product_id, employee_id, status, value_cents, commission_rate, commission_cents, start_date, end_date, created_on, updated_on
	          FROM contracts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.CustomerID, &c.ProductID, &c.EmployeeID, &c.Status, &c.ValueCents,
		&c.CommissionRate, &c.CommissionCents, &startDate, &endDate, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	c.StartDate = startDate.Format(dateFormat)
	c.EndDate = endDate.Format(dateFormat)
	c.CreatedOn = createdOn.Format(dateFormat)
	c.UpdatedOn = updatedOn.Format(dateFormat)
	return c, nil
}

func (r *contractRepository) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Contract, int32, error) {
	// customerID 0 and empty status mean "no filter"; the sentinel args
	// collapse the predicate in SQL instead of branching query strings.
	var count int32
	countQuery := `SELECT count(*) FROM contracts
	               WHERE ($1 = 0 OR customer_id = $1) AND ($2 = '' OR status = $2)`
	if err := r.db.QueryRowContext(ctx, countQuery, customerID, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, customer_id, product_id, employee_id, status, value_cents, commission_rate, commission_cents, start_date, end_date, created_on, updated_on
	          FROM contracts
	          WHERE ($1 = 0 OR customer_id = $1) AND ($2 = '' OR status = $2)
	          ORDER BY created_on DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, customerID, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		var startDate, endDate, createdOn, updatedOn time.Time
		if err := rows.Scan(&c.ID, &c.CustomerID, &c.ProductID, &c.EmployeeID, &c.Status, &c.ValueCents,
			&c.CommissionRate, &c.CommissionCents, &startDate, &endDate, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		c.StartDate = startDate.Format(dateFormat)
		c.EndDate = endDate.Format(dateFormat)
		c.CreatedOn = createdOn.Format(dateFormat)
		c.UpdatedOn = updatedOn.Format(dateFormat)
		contracts = append(contracts, c)
	}
	return contracts, count, rows.Err()
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	query := `UPDATE contracts SET status = $1, updated_on = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
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

func (r *contractRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
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
