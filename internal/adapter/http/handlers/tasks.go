package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/daveshb/taskload/internal/adapter/http/dto"
	"github.com/daveshb/taskload/internal/adapter/http/mapper"
	"github.com/daveshb/taskload/internal/adapter/http/middleware"
	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
	"github.com/daveshb/taskload/pkg/apiresponse"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiresponse.NewError(apiresponse.MsgTaskFieldsRequired, lang))
		return
	}

	limitDate, err := parseDate(req.LimitDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, apiresponse.NewError(apiresponse.MsgTaskFieldsRequired, lang))
		return
	}

	subtasks := make([]domain.Subtask, 0, len(req.Subtareas))
	for _, subtask := range req.Subtareas {
		subtasks = append(subtasks, domain.Subtask{
			Title:  subtask.Title,
			Action: subtask.Action,
		})
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		LimitDate:   limitDate,
		Subtasks:    subtasks,
	})
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiresponse.NewError(apiresponse.MsgFailCreateTask, lang))
		return
	}

	c.JSON(http.StatusCreated, apiresponse.NewSuccess(apiresponse.MsgTaskCreated, lang, mapper.ToTaskItem(task)))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	query := domain.TaskListQuery{
		Page:    intQuery(c, "page", defaultPage),
		PerPage: intQuery(c, "perPage", defaultPerPage),
		Search:  c.Query("search"),
	}

	page, err := h.taskService.ListTasks(c.Request.Context(), query)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiresponse.NewError(apiresponse.MsgFailListTasks, lang))
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Success: true,
		Data:    mapper.ToTaskItems(page.Tasks),
		Pagination: dto.PaginationInfo{
			Page:       page.Pagination.Page,
			PerPage:    page.Pagination.PerPage,
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
		},
	})
}

// parseDate accepts the two shapes the front end sends: a full timestamp
// or a bare calendar date.
func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// intQuery falls back to the default on absent or non-numeric values; the
// service clamps out-of-range numbers afterwards.
func intQuery(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return value
}
