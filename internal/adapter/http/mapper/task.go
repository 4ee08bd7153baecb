package mapper

import (
	"time"

	"github.com/daveshb/taskload/internal/adapter/http/dto"
	"github.com/daveshb/taskload/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	subtareas := make([]dto.SubtaskItem, 0, len(task.Subtasks))
	for _, subtask := range task.Subtasks {
		subtareas = append(subtareas, dto.SubtaskItem{
			Title:  subtask.Title,
			Action: subtask.Action,
		})
	}

	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreateDate:  task.CreateDate.Format(time.RFC3339),
		LimitDate:   task.LimitDate.Format(time.RFC3339),
		Subtareas:   subtareas,
	}
}
