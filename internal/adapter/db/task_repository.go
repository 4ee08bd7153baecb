package db

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (id, title, description, create_date, limit_date)
VALUES (?, ?, ?, ?, ?);
`

	insertSubtaskQuery = `
INSERT INTO subtasks (task_id, position, title, action)
VALUES (?, ?, ?, ?);
`

	listTasksQuery = `
SELECT t.id, t.title, t.description, t.create_date, t.limit_date
FROM tasks t
%s
ORDER BY t.create_date DESC, t.id DESC
LIMIT ? OFFSET ?;
`

	countTasksQuery = `
SELECT COUNT(*)
FROM tasks t
%s;
`

	listSubtasksQuery = `
SELECT s.task_id, s.title, s.action
FROM subtasks s
WHERE s.task_id IN (?)
ORDER BY s.task_id, s.position;
`

	searchFilterClause = `WHERE t.title LIKE ? ESCAPE '\\'`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreateDate  time.Time `db:"create_date"`
	LimitDate   time.Time `db:"limit_date"`
}

type subtaskRow struct {
	TaskID string `db:"task_id"`
	Title  string `db:"title"`
	Action string `db:"action"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput, createDate time.Time) (domain.Task, error) {
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CreateDate:  createDate,
		LimitDate:   input.LimitDate,
		Subtasks:    input.Subtasks,
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, insertTaskQuery, task.ID, task.Title, task.Description, task.CreateDate, task.LimitDate); err != nil {
		return domain.Task{}, err
	}

	// Position records insertion order so reads return subtasks exactly
	// as the caller sent them.
	for i, subtask := range input.Subtasks {
		if _, err := tx.ExecContext(ctx, insertSubtaskQuery, task.ID, i, subtask.Title, subtask.Action); err != nil {
			return domain.Task{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, search string, limit, offset int) ([]domain.Task, error) {
	query, args := buildTaskFilter(listTasksQuery, search)
	args = append(args, limit, offset)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, domain.Task{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			CreateDate:  row.CreateDate,
			LimitDate:   row.LimitDate,
			Subtasks:    []domain.Subtask{},
		})
	}

	if err := r.attachSubtasks(ctx, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) CountTasks(ctx context.Context, search string) (int64, error) {
	query, args := buildTaskFilter(countTasksQuery, search)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *TaskRepository) attachSubtasks(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]string, 0, len(tasks))
	index := make(map[string]int, len(tasks))
	for i, task := range tasks {
		ids = append(ids, task.ID)
		index[task.ID] = i
	}

	query, args, err := sqlx.In(listSubtasksQuery, ids)
	if err != nil {
		return err
	}

	var rows []subtaskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return err
	}

	for _, row := range rows {
		i, ok := index[row.TaskID]
		if !ok {
			continue
		}
		tasks[i].Subtasks = append(tasks[i].Subtasks, domain.Subtask{
			Title:  row.Title,
			Action: row.Action,
		})
	}

	return nil
}

// buildTaskFilter fills the query template with the optional search
// clause. The LIKE pattern escapes wildcard characters so the search term
// only ever matches as a literal substring; the column's *_ci collation
// makes the match case-insensitive.
func buildTaskFilter(template, search string) (string, []interface{}) {
	if search == "" {
		return strings.Replace(template, "%s", "", 1), nil
	}

	pattern := "%" + escapeLike(search) + "%"
	return strings.Replace(template, "%s", searchFilterClause, 1), []interface{}{pattern}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
