package services

import (
	"context"
	"time"
)

// AuthSvcFacade authenticates the single operator.
type AuthSvcFacade interface {
	// Login checks the operator password and issues an access token.
	Login(ctx context.Context, password string) (token string, expiresAt time.Time, err error)

	// ValidateToken parses an access token and returns its subject.
	ValidateToken(ctx context.Context, token string) (string, error)
}
