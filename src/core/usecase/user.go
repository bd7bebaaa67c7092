package usecase

import (
	"context"
	"log/slog"

	"fintrack/src/core/domain"
	"fintrack/src/core/ports"
)

// UserService handles registration and login.
type UserService struct {
	repo ports.FinanceRepository
	log  *slog.Logger
}

func NewUserService(repo ports.FinanceRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register stores a new user and returns the created row.
func (s *UserService) Register(ctx context.Context, in ports.NewUser) (*domain.User, error) {
	user, err := s.repo.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login looks up a user by email and password. A miss is not an error:
// it returns (nil, nil).
//
// Passwords are compared as stored, without hashing.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.repo.FindUserByCredentials(ctx, email, password)
}
