// Package auth implements login and session introspection.
package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
	"github.com/arcisai/crm-backend/internal/domain/access"
	"github.com/arcisai/crm-backend/internal/domain/repository"
	appjwt "github.com/arcisai/crm-backend/pkg/jwt"
	"github.com/arcisai/crm-backend/pkg/logger"
)

// Config token parameters for the usecase.
type Config struct {
	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
}

// Usecase authenticates users and answers "who am I".
type Usecase struct {
	users repository.UserRepository
	cfg   Config
	log   *logger.Logger
}

func New(users repository.UserRepository, cfg Config, log *logger.Logger) *Usecase {
	return &Usecase{users: users, cfg: cfg, log: log}
}

// Login verifies credentials and issues a JWT carrying the role set.
// A wrong password and an unknown email are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "" && user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	token, err := appjwt.Generate(u.cfg.JWTSecret, user.ID, user.Roles, u.cfg.JWTIssuer, u.cfg.JWTExpMinutes)
	if err != nil {
		return nil, err
	}

	u.log.Info().Str("user_id", user.ID).Strs("roles", user.Roles).Msg("user logged in")
	return &dto.LoginResponse{
		Token: token,
		Role:  user.Roles,
		User:  dto.FromUser(user),
	}, nil
}

// Me returns the authenticated user plus the routes and menu entries their
// role set allows, so the SPA renders without a second gating source.
func (u *Usecase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roles := make([]access.Role, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, access.Role(r))
	}
	v := access.Resolve(roles)

	var allowed, visible []string
	for _, rt := range access.Routes {
		if v.Allowed(rt) {
			allowed = append(allowed, string(rt))
		}
		if v.MenuVisible(rt) {
			visible = append(visible, string(rt))
		}
	}

	return &dto.MeResponse{
		UserResponse:  dto.FromUser(user),
		AllowedRoutes: allowed,
		VisibleMenu:   visible,
	}, nil
}
