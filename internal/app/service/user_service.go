package service

import (
	"context"
	"time"

	"github.com/daveshb/taskload/internal/core/domain"
	"github.com/daveshb/taskload/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	dbTimeout      time.Duration
}

func NewUserService(userRepository ports.UserRepository, dbTimeout time.Duration) *UserService {
	return &UserService{userRepository: userRepository, dbTimeout: dbTimeout}
}

// Register relies on the storage-level unique key on cc: a duplicate
// insert loses atomically and surfaces as domain.ErrUserExists, so there
// is no racy read-before-write here.
func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	return s.userRepository.CreateUser(ctx, input)
}

// Login answers domain.ErrInvalidCredentials for an unknown email and for
// a wrong password alike.
func (s *UserService) Login(ctx context.Context, email, pass string) (domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	if user == nil || user.Pass != pass {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return *user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	return s.userRepository.ListUsers(ctx)
}

var _ ports.UserService = (*UserService)(nil)
