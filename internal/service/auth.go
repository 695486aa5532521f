package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/logger"
	"rentgear-backend/internal/repository"
	"rentgear-backend/internal/security"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// a login probe cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	adminRepo repository.AdminUserRepository
	tokens    security.TokenManager
}

func NewAuthService(adminRepo repository.AdminUserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateAccessToken(user.ID, user.Username)
}

// EnsureAdminUser creates the configured admin account if it does not exist.
// The credential comes from deployment configuration, never from source.
func (s *authService) EnsureAdminUser(ctx context.Context, username, password string) error {
	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	user := &domain.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(ctx, user); err != nil {
		return err
	}
	logger.Info("Seeded admin user", "username", username)
	return nil
}
