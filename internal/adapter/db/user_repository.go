package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
)

const (
	insertUserQuery = `
INSERT INTO users (id, cc, name, tel, email, pass, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

	findUserByEmailQuery = `
SELECT u.id, u.cc, u.name, u.tel, u.email, u.pass, u.created_at
FROM users u
WHERE u.email = ?
LIMIT 1;
`

	listUsersQuery = `
SELECT u.id, u.cc, u.name, u.tel, u.email, u.pass, u.created_at
FROM users u
ORDER BY u.created_at, u.id;
`
)

// mysqlDuplicateEntry is the server error number for a unique key violation.
const mysqlDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        string    `db:"id"`
	CC        string    `db:"cc"`
	Name      string    `db:"name"`
	Tel       string    `db:"tel"`
	Email     string    `db:"email"`
	Pass      string    `db:"pass"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser lets the unique key on cc arbitrate concurrent registrations:
// the losing insert comes back as domain.ErrUserExists.
func (r *UserRepository) CreateUser(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	user := domain.User{
		ID:        uuid.NewString(),
		CC:        input.CC,
		Name:      input.Name,
		Tel:       input.Tel,
		Email:     input.Email,
		Pass:      input.Pass,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, insertUserQuery, user.ID, user.CC, user.Name, user.Tel, user.Email, user.Pass, user.CreatedAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.User{}, domain.ErrUserExists
		}
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, findUserByEmailQuery, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user := mapUserRowToDomainUser(row)
	return &user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, listUsersQuery); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}

	return users, nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		CC:        row.CC,
		Name:      row.Name,
		Tel:       row.Tel,
		Email:     row.Email,
		Pass:      row.Pass,
		CreatedAt: row.CreatedAt,
	}
}
