package ports

import (
	"context"
	"time"

	"github.com/daveshb/taskload/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput, createDate time.Time) (domain.Task, error)
	ListTasks(ctx context.Context, search string, limit, offset int) ([]domain.Task, error)
	CountTasks(ctx context.Context, search string) (int64, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, query domain.TaskListQuery) (domain.TaskPage, error)
}
