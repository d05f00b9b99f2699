package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"vsl-server/internal/store"

	"github.com/google/uuid"
)

// ProfileStore defines the database operations required by ProfileProcessor
type ProfileStore interface {
	CreateBusinessProfile(ctx context.Context, userID uuid.UUID, params store.BusinessProfileParams) (store.BusinessProfile, error)
	ListBusinessProfiles(ctx context.Context, userID uuid.UUID) ([]store.BusinessProfile, error)
	GetBusinessProfile(ctx context.Context, userID, profileID uuid.UUID) (store.BusinessProfile, error)
	UpdateBusinessProfile(ctx context.Context, userID, profileID uuid.UUID, params store.BusinessProfileParams) (store.BusinessProfile, error)
	DeleteBusinessProfile(ctx context.Context, userID, profileID uuid.UUID) error
}

// LanguageChecker reports whether a language code is known
type LanguageChecker interface {
	Supports(code string) bool
	DefaultCode() string
}
