package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cleaning_tracker/internal/apperrors"
	"github.com/SscSPs/cleaning_tracker/internal/core/services"
	"github.com/SscSPs/cleaning_tracker/internal/platform/config"
	"github.com/SscSPs/cleaning_tracker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginAndValidate(t *testing.T) {
	hash, err := utils.HashPassword("mop-and-bucket")
	require.NoError(t, err)

	svc := services.NewAuthService(&config.Config{
		OperatorPasswordHash: hash,
		JWTSecret:            "test-secret",
		JWTExpiryDuration:    time.Hour,
		JWTIssuer:            "cleaning_tracker",
	})
	ctx := context.Background()

	_, _, err = svc.Login(ctx, "wrong password")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	token, expiresAt, err := svc.Login(ctx, "mop-and-bucket")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	subject, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, services.OperatorSubject, subject)

	_, err = svc.ValidateToken(ctx, token+"x")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
