package postgres

import (
	"context"
	"database/sql"
	"time"

	"crm-backend/internal/domain"
	"crm-backend/internal/repository"
)

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (title, details, status, priority, assignee_id, customer_id, due_on, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		t.Title, t.Details, t.Status, t.Priority, t.AssigneeID, t.CustomerID, t.DueOn, now).Scan(&t.ID)
	if err != nil {
		return err
	}
	t.CreatedOn = now.Format(dateFormat)
	t.UpdatedOn = t.CreatedOn
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	t := &domain.Task{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, title, details, status, priority, assignee_id, customer_id, due_on, created_on, updated_on
	          FROM tasks WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Details, &t.Status, &t.Priority, &t.AssigneeID, &t.CustomerID, &t.DueOn, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	t.CreatedOn = createdOn.Format(dateFormat)
	t.UpdatedOn = updatedOn.Format(dateFormat)
	return t, nil
}

func (r *taskRepository) List(ctx context.Context, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM tasks
	               WHERE ($1 = 0 OR assignee_id = $1) AND ($2 = '' OR status = $2)`
	if err := r.db.QueryRowContext(ctx, countQuery, assigneeID, status).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, title, details, status, priority, assignee_id, customer_id, due_on, created_on, updated_on
	          FROM tasks
	          WHERE ($1 = 0 OR assignee_id = $1) AND ($2 = '' OR status = $2)
	          ORDER BY due_on ASC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, assigneeID, status, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, 0, err
	}
	return tasks, count, rows.Err()
}

func (r *taskRepository) ListDueWithin(ctx context.Context, hours int32) ([]domain.Task, error) {
	// The lower bound keeps long-overdue tasks from matching again on every
	// scheduler run.
	now := time.Now()
	cutoff := now.Add(time.Duration(hours) * time.Hour)
	query := `SELECT id, title, details, status, priority, assignee_id, customer_id, due_on, created_on, updated_on
	          FROM tasks WHERE status != $1 AND due_on > $2 AND due_on <= $3 ORDER BY due_on ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.TaskStatusDone, now, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		return nil, err
	}
	return tasks, rows.Err()
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&t.ID, &t.Title, &t.Details, &t.Status, &t.Priority,
			&t.AssigneeID, &t.CustomerID, &t.DueOn, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		t.CreatedOn = createdOn.Format(dateFormat)
		t.UpdatedOn = updatedOn.Format(dateFormat)
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = $1, details = $2, priority = $3, assignee_id = $4, customer_id = $5, due_on = $6, updated_on = $7
	          WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		t.Title, t.Details, t.Priority, t.AssigneeID, t.CustomerID, t.DueOn, time.Now(), t.ID)
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

func (r *taskRepository) UpdateStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	query := `UPDATE tasks SET status = $1, updated_on = $2 WHERE id = $3`
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

func (r *taskRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
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
