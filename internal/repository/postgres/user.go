package postgres

import (
	"context"
	"database/sql"
	"time"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, name, role, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	if err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Name, u.Role, now).Scan(&u.ID); err != nil {
		return err
	}
	u.CreatedOn = now.Format(dateFormat)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, password_hash, name, role, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format(dateFormat)
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, password_hash, name, role, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format(dateFormat)
	return u, nil
}
