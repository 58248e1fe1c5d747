package postgres

import (
	"context"
	"database/sql"
	"time"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (name, email, phone, role, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	if err := r.db.QueryRowContext(ctx, query, e.Name, e.Email, e.Phone, e.Role, now).Scan(&e.ID); err != nil {
		return err
	}
	e.CreatedOn = now.Format(dateFormat)
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	e := &domain.Employee{}
	var createdOn time.Time
	query := `SELECT id, name, email, phone, role, created_on FROM employees WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Role, &createdOn)
	if err != nil {
		return nil, err
	}
	e.CreatedOn = createdOn.Format(dateFormat)
	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM employees`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, email, phone, role, created_on FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		var createdOn time.Time
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Role, &createdOn); err != nil {
			return nil, 0, err
		}
		e.CreatedOn = createdOn.Format(dateFormat)
		employees = append(employees, e)
	}
	return employees, count, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name = $1, email = $2, phone = $3, role = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query, e.Name, e.Email, e.Phone, e.Role, e.ID)
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

func (r *employeeRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
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
