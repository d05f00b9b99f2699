package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"vsl-server/internal/generation"
	"vsl-server/internal/languages"
	"vsl-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	GetBusinessProfile(ctx context.Context, userID, profileID uuid.UUID) (store.BusinessProfile, error)
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	ListCampaigns(ctx context.Context, userID uuid.UUID) ([]store.CampaignSummary, error)
	GetCampaign(ctx context.Context, userID, campaignID uuid.UUID) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, userID, campaignID uuid.UUID) error
}

// ContentGenerator produces titles and full campaigns from a business profile
type ContentGenerator interface {
	GenerateTitles(ctx context.Context, profile generation.BusinessProfile) ([]string, error)
	GenerateCampaign(ctx context.Context, profile generation.BusinessProfile, title, language string) (generation.Campaign, error)
}

// LanguageDirectory resolves and names language codes
type LanguageDirectory interface {
	List() []languages.Language
	Name(code string) string
	Resolve(codes ...string) string
}
