package dto

// Wire names follow the existing front end: mongo-style _id, Spanish
// subtareas.

type TaskItem struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CreateDate  string        `json:"createDate"`
	LimitDate   string        `json:"limitDate"`
	Subtareas   []SubtaskItem `json:"subtareas"`
}

type SubtaskItem struct {
	Title  string `json:"title"`
	Action string `json:"action"`
}

type CreateTaskRequest struct {
	Title       string                 `json:"title" binding:"required,max=255"`
	Description string                 `json:"description" binding:"required"`
	LimitDate   string                 `json:"limitDate" binding:"required"`
	Subtareas   []CreateSubtaskRequest `json:"subtareas" binding:"omitempty,dive"`
}

type CreateSubtaskRequest struct {
	Title  string `json:"title" binding:"required,max=255"`
	Action string `json:"action" binding:"required,max=255"`
}

type PaginationInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// TaskListResponse is the one envelope with a pagination sibling next to
// data, so it does not reuse apiresponse.Response.
type TaskListResponse struct {
	Success    bool           `json:"success"`
	Data       []TaskItem     `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}
