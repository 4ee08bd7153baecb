package ports

import (
	"context"

	"github.com/daveshb/taskload/internal/core/domain"
)

type UserRepository interface {
	// CreateUser returns domain.ErrUserExists when the cc unique key is
	// violated, so callers need no read-before-write check.
	CreateUser(ctx context.Context, input domain.RegisterUserInput) (domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type UserService interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error)
	Login(ctx context.Context, email, pass string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
