package postgres

import (
	"context"
	"database/sql"
	"time"

	"crm-backend/internal/domain"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, email, phone, company, status, owner_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.Company, c.Status, c.OwnerID, now).Scan(&c.ID)
	if err != nil {
		logger.DatabaseError("INSERT", "customers", err, "email", c.Email)
		return err
	}
	c.CreatedOn = now.Format(dateFormat)
	c.UpdatedOn = c.CreatedOn
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, name, email, phone, company, status, owner_id, created_on, updated_on
	          FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Status, &c.OwnerID, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	c.CreatedOn = createdOn.Format(dateFormat)
	c.UpdatedOn = updatedOn.Format(dateFormat)
	return c, nil
}

func (r *customerRepository) List(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error) {
	offset := (page - 1) * pageSize
	pattern := "%" + search + "%"

	var count int32
	countQuery := `SELECT count(*) FROM customers WHERE name ILIKE $1 OR email ILIKE $1 OR company ILIKE $1`
	if err := r.db.QueryRowContext(ctx, countQuery, pattern).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, email, phone, company, status, owner_id, created_on, updated_on
	          FROM customers WHERE name ILIKE $1 OR email ILIKE $1 OR company ILIKE $1
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, pattern, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Status, &c.OwnerID, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		c.CreatedOn = createdOn.Format(dateFormat)
		c.UpdatedOn = updatedOn.Format(dateFormat)
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}

func (r *customerRepository) ListByStatus(ctx context.Context, status domain.CustomerStatus) ([]domain.Customer, error) {
	query := `SELECT id, name, email, phone, company, status, owner_id, created_on, updated_on
	          FROM customers WHERE status = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Status, &c.OwnerID, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		c.CreatedOn = createdOn.Format(dateFormat)
		c.UpdatedOn = updatedOn.Format(dateFormat)
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = $1, email = $2, phone = $3, company = $4, status = $5, owner_id = $6, updated_on = $7
	          WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.Phone, c.Company, c.Status, c.OwnerID, time.Now(), c.ID)
	if err != nil {
		logger.DatabaseError("UPDATE", "customers", err, "id", c.ID)
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

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
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
