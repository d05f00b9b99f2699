package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"vsl-server/internal/profiles/processor"

	"github.com/google/uuid"
)

// ProfileProcessor defines the business profile operations the HTTP layer needs
type ProfileProcessor interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, input processor.ProfileInput) (processor.Profile, error)
	ListProfiles(ctx context.Context, userID uuid.UUID) ([]processor.Profile, error)
	GetProfile(ctx context.Context, userID, profileID uuid.UUID) (processor.Profile, error)
	UpdateProfile(ctx context.Context, userID, profileID uuid.UUID, input processor.ProfileInput) (processor.Profile, error)
	DeleteProfile(ctx context.Context, userID, profileID uuid.UUID) error
}
