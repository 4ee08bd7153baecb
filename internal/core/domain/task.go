package domain

import "time"

type Task struct {
	ID          string
	Title       string
	Description string
	CreateDate  time.Time
	LimitDate   time.Time
	Subtasks    []Subtask
}

// Subtask has no identity of its own; it lives and dies with its parent
// task and its position in the slice is meaningful.
type Subtask struct {
	Title  string
	Action string
}

type CreateTaskInput struct {
	Title       string
	Description string
	LimitDate   time.Time
	Subtasks    []Subtask
}

// TaskListQuery carries raw caller input; the service clamps it before
// any offset is computed.
type TaskListQuery struct {
	Page    int
	PerPage int
	Search  string
}

type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int64
}

type TaskPage struct {
	Tasks      []Task
	Pagination Pagination
}
