package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/marsestates/brokerage-api/internal/config"
	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/pkg/token"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthCfg{JWTSecret: "test-secret", TokenTTLHours: 168},
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &model.AdminUser{ID: 3, Username: "mars", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		admins := &MockAdminRepo{}
		admins.On("GetByUsername", mock.Anything, "mars").Return(admin, nil)

		svc := NewAuthService(admins, authTestConfig())
		res, err := svc.Login(context.Background(), "mars", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "mars", res.Username)

		id, err := token.Verify(res.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, 3, id)
		admins.AssertExpectations(t)
	})

	t.Run("unknown username", func(t *testing.T) {
		admins := &MockAdminRepo{}
		admins.On("GetByUsername", mock.Anything, "nobody").Return(nil, nil)

		svc := NewAuthService(admins, authTestConfig())
		res, err := svc.Login(context.Background(), "nobody", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, res)
	})

	t.Run("wrong password", func(t *testing.T) {
		admins := &MockAdminRepo{}
		admins.On("GetByUsername", mock.Anything, "mars").Return(admin, nil)

		svc := NewAuthService(admins, authTestConfig())
		res, err := svc.Login(context.Background(), "mars", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials,
			"wrong password and unknown user must be indistinguishable")
		assert.Nil(t, res)
	})
}

func TestAuthService_ExpiredTTLRejected(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	admins := &MockAdminRepo{}
	admins.On("GetByUsername", mock.Anything, "mars").
		Return(&model.AdminUser{ID: 1, Username: "mars", PasswordHash: string(hash)}, nil)

	cfg := authTestConfig()
	cfg.Auth.TokenTTLHours = -1 // issues an already-expired token

	svc := NewAuthService(admins, cfg)
	res, err := svc.Login(context.Background(), "mars", "pw")
	require.NoError(t, err)

	_, err = token.Verify(res.Token, cfg.Auth.JWTSecret)
	assert.ErrorIs(t, err, token.ErrInvalid)
}
