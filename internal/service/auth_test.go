package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/security"
	"rentgear-backend/internal/service"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func hashedAdmin(t *testing.T, password string) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.AdminUser{ID: 1, Username: "admin", PasswordHash: string(hash)}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60)

	t.Run("Success", func(t *testing.T) {
		adminRepo := new(MockAdminUserRepo)
		svc := service.NewAuthService(adminRepo, tokens)

		adminRepo.On("GetByUsername", ctx, "admin").Return(hashedAdmin(t, "s3cret"), nil)

		token, err := svc.Login(ctx, "admin", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("Wrong password", func(t *testing.T) {
		adminRepo := new(MockAdminUserRepo)
		svc := service.NewAuthService(adminRepo, tokens)

		adminRepo.On("GetByUsername", ctx, "admin").Return(hashedAdmin(t, "s3cret"), nil)

		_, err := svc.Login(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown user reports the same error", func(t *testing.T) {
		adminRepo := new(MockAdminUserRepo)
		svc := service.NewAuthService(adminRepo, tokens)

		adminRepo.On("GetByUsername", ctx, "ghost").Return(nil, sql.ErrNoRows)

		_, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_EnsureAdminUser(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60)

	t.Run("Seeds on first start", func(t *testing.T) {
		adminRepo := new(MockAdminUserRepo)
		svc := service.NewAuthService(adminRepo, tokens)

		adminRepo.On("GetByUsername", ctx, "admin").Return(nil, sql.ErrNoRows)
		adminRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.AdminUser) bool {
			return u.Username == "admin" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
		})).Return(nil)

		require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "s3cret"))
		adminRepo.AssertExpectations(t)
	})

	t.Run("Existing account is left alone", func(t *testing.T) {
		adminRepo := new(MockAdminUserRepo)
		svc := service.NewAuthService(adminRepo, tokens)

		adminRepo.On("GetByUsername", ctx, "admin").Return(hashedAdmin(t, "old"), nil)

		require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "new"))
		adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
