// internal/services/auth_service.go
package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-backend/internal/config"
	"github.com/javajoker/catalog-backend/internal/utils"
)

const invalidCredentials = "Invalid username or password"

type AuthService struct {
	cfg    config.AuthConfig
	tokens *utils.TokenManager
	logger *logrus.Logger
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // in seconds
}

func NewAuthService(cfg config.AuthConfig, tokens *utils.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{
		cfg:    cfg,
		tokens: tokens,
		logger: logger,
	}
}

// Login exchanges the configured admin credentials for an access token.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ValidationError("validation failed", err)
	}

	if s.cfg.AdminPasswordHash == "" {
		s.logger.WithContext(ctx).Warn("Admin login attempted but no admin password hash is configured")
		return nil, UnauthorizedError(invalidCredentials)
	}

	usernameOK := utils.ConstantTimeEqual(req.Username, s.cfg.AdminUsername)
	passwordErr := utils.CheckPassword(s.cfg.AdminPasswordHash, req.Password)
	if !usernameOK || passwordErr != nil {
		s.logger.WithContext(ctx).WithField("username", req.Username).Warn("Admin login failed")
		return nil, UnauthorizedError(invalidCredentials)
	}

	token, err := s.tokens.GenerateJWT(req.Username, utils.RoleAdmin)
	if err != nil {
		return nil, InternalError(fmt.Errorf("failed to sign token: %w", err))
	}

	s.logger.WithContext(ctx).WithField("username", req.Username).Info("Admin logged in")
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.AccessTokenTTL * 3600,
	}, nil
}
