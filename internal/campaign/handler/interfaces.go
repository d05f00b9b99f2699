package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"vsl-server/internal/campaign/processor"
	"vsl-server/internal/languages"

	"github.com/google/uuid"
)

// CampaignProcessor defines the campaign operations the HTTP layer needs
type CampaignProcessor interface {
	ListLanguages() []languages.Language
	GenerateTitles(ctx context.Context, userID, profileID uuid.UUID) ([]string, error)
	GenerateCampaign(ctx context.Context, userID uuid.UUID, params processor.GenerateCampaignParams) (processor.Campaign, error)
	ListCampaigns(ctx context.Context, userID uuid.UUID) ([]processor.CampaignSummary, error)
	GetCampaign(ctx context.Context, userID, campaignID uuid.UUID) (processor.Campaign, error)
	DeleteCampaign(ctx context.Context, userID, campaignID uuid.UUID) error
}
