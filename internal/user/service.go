package user

import (
	"context"
	"fmt"
	"strings"

	"maktaba-be/internal/logger"
	"maktaba-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, in RegisterInput) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int, in UpdateInput) (*User, error)
	Delete(ctx context.Context, id int) error
	CountCustomers(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateRegister(in RegisterInput) error {
	if !strings.Contains(in.Email, "@") || len(in.Email) < 5 {
		return fmt.Errorf("invalid email: %w", utils.ErrValidation)
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters: %w", utils.ErrValidation)
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		return fmt.Errorf("name must be at least 2 characters: %w", utils.ErrValidation)
	}
	return nil
}

func (s *service) Register(ctx context.Context, in RegisterInput) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if err := validateRegister(in); err != nil {
		return "", nil, err
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, in, hashed, RoleUser)
	if err != nil {
		log.Error("failed to create user", zap.String("email", in.Email), zap.Error(err))
		return "", nil, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email, in.Name)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("register service completed",
		zap.Int("user_id", u.ID),
		zap.String("email", in.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Debug("email not found", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Debug("password not match", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	if !u.Enabled {
		return "", nil, ErrAccountDisabled
	}

	name := ""
	if u.Name != nil {
		name = *u.Name
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email, name)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int, in UpdateInput) (*User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, fmt.Errorf("invalid role %q: %w", *in.Role, utils.ErrValidation)
	}
	if in.Points != nil && *in.Points < 0 {
		return nil, fmt.Errorf("points cannot be negative: %w", utils.ErrValidation)
	}
	return s.repo.Update(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) CountCustomers(ctx context.Context) (int, error) {
	return s.repo.CountByRole(ctx, RoleUser)
}
