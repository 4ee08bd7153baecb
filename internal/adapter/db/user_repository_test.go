package db

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"github.com/daveshb/taskload/internal/core/domain"
)

func TestUserRepository_CreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewUserRepository(db)

	input := domain.RegisterUserInput{CC: "10203040", Name: "Maria", Tel: "555", Email: "maria@example.com", Pass: "secret"}

	mock.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
		WithArgs(sqlmock.AnyArg(), input.CC, input.Name, input.Tel, input.Email, input.Pass, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := repository.CreateUser(context.Background(), input)

	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, input.CC, user.CC)
	require.WithinDuration(t, time.Now().UTC(), user.CreatedAt, 5*time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateCC(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(insertUserQuery)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '10203040' for key 'uq_users_cc'"})

	_, err := repository.CreateUser(context.Background(), domain.RegisterUserInput{CC: "10203040", Name: "Maria", Pass: "secret"})

	require.ErrorIs(t, err, domain.ErrUserExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByEmail_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewUserRepository(db)

	createdAt := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmailQuery)).
		WithArgs("maria@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "cc", "name", "tel", "email", "pass", "created_at"}).
			AddRow("u-1", "10203040", "Maria", "555", "maria@example.com", "secret", createdAt))

	user, err := repository.FindUserByEmail(context.Background(), "maria@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "u-1", user.ID)
	require.Equal(t, "secret", user.Pass)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmailQuery)).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repository.FindUserByEmail(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	require.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUsers(t *testing.T) {
	db, mock := newMockDB(t)
	repository := NewUserRepository(db)

	createdAt := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(listUsersQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cc", "name", "tel", "email", "pass", "created_at"}).
			AddRow("u-1", "10203040", "Maria", "555", "maria@example.com", "secret", createdAt).
			AddRow("u-2", "50607080", "Jorge", "", "", "hunter2", createdAt.Add(time.Minute)))

	users, err := repository.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "u-1", users[0].ID)
	require.Equal(t, "Jorge", users[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
