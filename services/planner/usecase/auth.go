package usecase

import (
	"context"
	"fmt"
	"strings"

	jwtpkg "github.com/radityabs/rutevis/internal/pkg/jwt"
	"github.com/radityabs/rutevis/internal/pkg/logger"
	"github.com/radityabs/rutevis/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the operator credentials against the configured bcrypt
// hash and issues a JWT token
func (uc *PlannerUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	if email != strings.ToLower(uc.cfg.Auth.OperatorEmail) {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.Auth.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Failed operator login attempt",
			logger.String("email", email))
		return nil, fmt.Errorf("invalid credentials")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(email, "operator", uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
