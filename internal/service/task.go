package service

import (
	"context"

	"crm-backend/internal/domain"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
)

type taskService struct {
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
	email        EmailService
}

func NewTaskService(taskRepo repository.TaskRepository, employeeRepo repository.EmployeeRepository, email EmailService) TaskService {
	return &taskService{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		email:        email,
	}
}

func (s *taskService) CreateTask(ctx context.Context, t *domain.Task) error {
	if t.Status == "" {
		t.Status = domain.TaskStatusOpen
	}
	if t.Priority == "" {
		t.Priority = domain.TaskPriorityMedium
	}
	if err := s.taskRepo.Create(ctx, t); err != nil {
		return err
	}

	if t.AssigneeID != 0 {
		assignee, err := s.employeeRepo.GetByID(ctx, t.AssigneeID)
		if err != nil {
			logger.Warn("Task assignee lookup failed, skipping email", "task_id", t.ID, "assignee_id", t.AssigneeID, "error", err)
			return nil
		}
		due := t.DueOn.Format("2006-01-02")
		if err := s.email.SendTaskAssignmentEmail(ctx, assignee.Email, assignee.Name, t.Title, due); err != nil {
			logger.Warn("Task assignment email failed", "task_id", t.ID, "error", err)
		}
	}
	return nil
}

func (s *taskService) GetTask(ctx context.Context, id int32) (*domain.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

func (s *taskService) ListTasks(ctx context.Context, assigneeID int32, status string, page, pageSize int32) ([]domain.Task, int32, error) {
	return s.taskRepo.List(ctx, assigneeID, status, page, pageSize)
}

func (s *taskService) UpdateTask(ctx context.Context, t *domain.Task) error {
	return s.taskRepo.Update(ctx, t)
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, id int32, status domain.TaskStatus) error {
	return s.taskRepo.UpdateStatus(ctx, id, status)
}

func (s *taskService) DeleteTask(ctx context.Context, id int32) error {
	return s.taskRepo.Delete(ctx, id)
}
