package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/platform/config"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
)

// OperatorSubject is the token subject issued to the single operator.
const OperatorSubject = "operator"

type authService struct {
	BaseService
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	jwtIssuer    string
}

// NewAuthService creates the operator authentication service.
func NewAuthService(cfg *config.Config, options ...ServiceOption) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:  newBaseService(options...),
		passwordHash: cfg.OperatorPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtExpiry:    cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if !utils.CheckPasswordHash(password, s.passwordHash) {
		s.GetLogger(ctx).Warn("Operator login failed")
		return "", time.Time{}, apperrors.NewAppError(apperrors.ErrUnauthorized, "invalid password", nil)
	}
	token, expiresAt, err := utils.GenerateJWT(OperatorSubject, s.jwtSecret, s.jwtExpiry, s.jwtIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	s.LogInfo(ctx, "Operator logged in")
	return token, expiresAt, nil
}

func (s *authService) ValidateToken(_ context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.jwtSecret, s.jwtIssuer)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrUnauthorized, "invalid token", err)
	}
	if claims.Subject != OperatorSubject {
		return "", apperrors.NewAppError(apperrors.ErrUnauthorized, "unexpected token subject", nil)
	}
	return claims.Subject, nil
}
