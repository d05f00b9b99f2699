package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vsl-server/internal/generation"
	"vsl-server/internal/languages"
	"vsl-server/internal/observability"
	"vsl-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound  = errors.New("business profile not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrGenerationFailed = errors.New("content generation failed")
	ErrInvalidInput     = errors.New("invalid input")
)

type CampaignProcessor struct {
	store     CampaignStore
	generator ContentGenerator
	languages LanguageDirectory
	logger    *observability.Logger
}

func New(store CampaignStore, generator ContentGenerator, languages LanguageDirectory, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:     store,
		generator: generator,
		languages: languages,
		logger:    logger,
	}
}

// GenerateCampaignParams identifies the profile and title to build a campaign from.
// An empty Language defers to the profile, then to the default language.
type GenerateCampaignParams struct {
	BusinessProfileID uuid.UUID
	VSLTitle          string
	Language          string
}

type Metadata struct {
	Title           string                     `json:"title"`
	GeneratedAt     time.Time                  `json:"generated_at"`
	BusinessProfile generation.BusinessProfile `json:"business_profile"`
	Language        string                     `json:"language"`
	LanguageName    string                     `json:"language_name"`
}

// Campaign is a persisted campaign as returned to clients
type Campaign struct {
	ID                uuid.UUID               `json:"id"`
	BusinessProfileID uuid.UUID               `json:"business_profile_id"`
	VSL               generation.ScriptBundle `json:"vsl"`
	Ads               generation.AdsBundle    `json:"ads"`
	Metadata          Metadata                `json:"metadata"`
	CreatedAt         time.Time               `json:"created_at"`
}

type CampaignSummary struct {
	ID                uuid.UUID `json:"id"`
	BusinessProfileID uuid.UUID `json:"business_profile_id"`
	Title             string    `json:"title"`
	Language          string    `json:"language"`
	CreatedAt         time.Time `json:"created_at"`
}

func (p *CampaignProcessor) ListLanguages() []languages.Language {
	return p.languages.List()
}

func (p *CampaignProcessor) GenerateTitles(ctx context.Context, userID, profileID uuid.UUID) ([]string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "business_profile_id", Value: profileID},
	)

	profile, err := p.getProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	titles, err := p.generator.GenerateTitles(ctx, toGenerationProfile(profile))
	if err != nil {
		return nil, p.generationError(ctx, err)
	}
	return titles, nil
}

// GenerateCampaign generates a full campaign and persists it. Nothing is
// stored unless every part of the campaign was generated.
func (p *CampaignProcessor) GenerateCampaign(ctx context.Context, userID uuid.UUID, params GenerateCampaignParams) (Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "business_profile_id", Value: params.BusinessProfileID},
	)

	profile, err := p.getProfile(ctx, userID, params.BusinessProfileID)
	if err != nil {
		return Campaign{}, err
	}

	language := p.languages.Resolve(params.Language, profile.Language)
	generated, err := p.generator.GenerateCampaign(ctx, toGenerationProfile(profile), params.VSLTitle, language)
	if err != nil {
		return Campaign{}, p.generationError(ctx, err)
	}

	created, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		UserID:            userID,
		BusinessProfileID: profile.ID,
		VSLTitle:          generated.Metadata.Title,
		VSLScriptA:        generated.VSL.ScriptVariantA,
		VSLScriptB:        generated.VSL.ScriptVariantB,
		VideoScripts:      generated.Ads.VideoScripts,
		AdCopyA:           generated.Ads.AdCopyVariantA,
		AdCopyB:           generated.Ads.AdCopyVariantB,
		HeadlineA:         generated.Ads.HeadlineVariantA,
		HeadlineB:         generated.Ads.HeadlineVariantB,
		Language:          generated.Metadata.Language,
		BusinessProfile:   toSnapshot(generated.Metadata.BusinessProfile),
		GeneratedAt:       generated.Metadata.GeneratedAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist campaign", err)
		return Campaign{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: created.ID}), "campaign created")
	return p.fromStore(created), nil
}

func (p *CampaignProcessor) ListCampaigns(ctx context.Context, userID uuid.UUID) ([]CampaignSummary, error) {
	campaigns, err := p.store.ListCampaigns(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	out := make([]CampaignSummary, len(campaigns))
	for i, c := range campaigns {
		out[i] = CampaignSummary{
			ID:                c.ID,
			BusinessProfileID: c.BusinessProfileID,
			Title:             c.VSLTitle,
			Language:          c.Language,
			CreatedAt:         c.CreatedAt,
		}
	}
	return out, nil
}

func (p *CampaignProcessor) GetCampaign(ctx context.Context, userID, campaignID uuid.UUID) (Campaign, error) {
	campaign, err := p.store.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, err
	}
	return p.fromStore(campaign), nil
}

func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, userID, campaignID uuid.UUID) error {
	if err := p.store.DeleteCampaign(ctx, userID, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}
	return nil
}

func (p *CampaignProcessor) getProfile(ctx context.Context, userID, profileID uuid.UUID) (store.BusinessProfile, error) {
	profile, err := p.store.GetBusinessProfile(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.BusinessProfile{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to get business profile", err)
		return store.BusinessProfile{}, err
	}
	return profile, nil
}

func (p *CampaignProcessor) generationError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, generation.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, generation.ErrGenerationFailed):
		p.logger.Error(ctx, "content generation failed", err)
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	default:
		p.logger.Error(ctx, "unexpected generation error", err)
		return err
	}
}

func (p *CampaignProcessor) fromStore(c store.Campaign) Campaign {
	return Campaign{
		ID:                c.ID,
		BusinessProfileID: c.BusinessProfileID,
		VSL: generation.ScriptBundle{
			ScriptVariantA: c.VSLScriptA,
			ScriptVariantB: c.VSLScriptB,
		},
		Ads: generation.AdsBundle{
			VideoScripts:     []string(c.VideoScripts),
			AdCopyVariantA:   c.AdCopyA,
			AdCopyVariantB:   c.AdCopyB,
			HeadlineVariantA: c.HeadlineA,
			HeadlineVariantB: c.HeadlineB,
		},
		Metadata: Metadata{
			Title:           c.VSLTitle,
			GeneratedAt:     c.GeneratedAt,
			BusinessProfile: fromSnapshot(c.BusinessProfile),
			Language:        c.Language,
			LanguageName:    p.languages.Name(c.Language),
		},
		CreatedAt: c.CreatedAt,
	}
}

func toGenerationProfile(p store.BusinessProfile) generation.BusinessProfile {
	return generation.BusinessProfile{
		Offer:    p.Offer,
		Avatar:   p.Avatar,
		Problems: p.Problems,
		Desires:  p.Desires,
		Tone:     generation.Tone(p.Tone),
		Language: p.Language,
	}
}

func toSnapshot(p generation.BusinessProfile) store.ProfileSnapshot {
	return store.ProfileSnapshot{
		Offer:    p.Offer,
		Avatar:   p.Avatar,
		Problems: p.Problems,
		Desires:  p.Desires,
		Tone:     string(p.Tone),
		Language: p.Language,
	}
}

func fromSnapshot(s store.ProfileSnapshot) generation.BusinessProfile {
	return generation.BusinessProfile{
		Offer:    s.Offer,
		Avatar:   s.Avatar,
		Problems: s.Problems,
		Desires:  s.Desires,
		Tone:     generation.Tone(s.Tone),
		Language: s.Language,
	}
}
