package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"vsl-server/internal/auth/processor"

	"github.com/google/uuid"
)

// AuthProcessor defines the account operations the HTTP layer needs
type AuthProcessor interface {
	Register(ctx context.Context, email, password string) (processor.AuthenticatedUser, error)
	Login(ctx context.Context, email, password string) (processor.AuthenticatedUser, error)
	GetUser(ctx context.Context, userID uuid.UUID) (processor.User, error)
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}
