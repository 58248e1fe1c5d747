package postgres

import (
	"context"
	"database/sql"
	"time"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (name, description, price_cents, category, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	if err := r.db.QueryRowContext(ctx, query, p.Name, p.Description, p.PriceCents, p.Category, p.Active, now).Scan(&p.ID); err != nil {
		return err
	}
	p.CreatedOn = now.Format(dateFormat)
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	var createdOn time.Time
	query := `SELECT id, name, description, price_cents, category, active, created_on FROM products WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.Active, &createdOn)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = createdOn.Format(dateFormat)
	return p, nil
}

func (r *productRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Product, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, name, description, price_cents, category, active, created_on
	          FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var createdOn time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.Active, &createdOn); err != nil {
			return nil, 0, err
		}
		p.CreatedOn = createdOn.Format(dateFormat)
		products = append(products, p)
	}
	return products, count, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name = $1, description = $2, price_cents = $3, category = $4, active = $5 WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.PriceCents, p.Category, p.Active, p.ID)
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

func (r *productRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
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
