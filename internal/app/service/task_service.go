package service

import (
	"context"
	"time"

	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
)

const (
	minPage    = 1
	minPerPage = 1
	maxPerPage = 100
)

type TaskService struct {
	taskRepository ports.TaskRepository
	dbTimeout      time.Duration
}

func NewTaskService(taskRepository ports.TaskRepository, dbTimeout time.Duration) *TaskService {
	return &TaskService{taskRepository: taskRepository, dbTimeout: dbTimeout}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	return s.taskRepository.CreateTask(ctx, input, time.Now().UTC())
}

// ListTasks clamps the caller's paging values, counts everything matching
// the search filter, and fetches one page sorted newest first. Pages past
// the end come back empty rather than failing.
func (s *TaskService) ListTasks(ctx context.Context, query domain.TaskListQuery) (domain.TaskPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	page := clamp(query.Page, minPage, 0)
	perPage := clamp(query.PerPage, minPerPage, maxPerPage)
	offset := (page - 1) * perPage

	total, err := s.taskRepository.CountTasks(ctx, query.Search)
	if err != nil {
		return domain.TaskPage{}, err
	}

	tasks, err := s.taskRepository.ListTasks(ctx, query.Search, perPage, offset)
	if err != nil {
		return domain.TaskPage{}, err
	}

	return domain.TaskPage{
		Tasks: tasks,
		Pagination: domain.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages(total, perPage),
		},
	}, nil
}

// clamp bounds v to [low, high]; high <= 0 means unbounded above.
func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if high > 0 && v > high {
		return high
	}
	return v
}

func totalPages(total int64, perPage int) int64 {
	if total == 0 {
		return 0
	}
	return (total + int64(perPage) - 1) / int64(perPage)
}

var _ ports.TaskService = (*TaskService)(nil)
