package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/marsestates/brokerage-api/internal/config"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
	"github.com/marsestates/brokerage-api/internal/pkg/token"
)

// ErrInvalidCredentials covers both unknown usernames and wrong
// passwords. Callers must surface the same response for either.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authService struct {
	admins repo.AdminRepo
	cfg    *config.Config
}

func NewAuthService(admins repo.AdminRepo, cfg *config.Config) AuthService {
	return &authService{admins: admins, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	t, err := token.Issue(admin.ID, s.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: t, Username: admin.Username}, nil
}
