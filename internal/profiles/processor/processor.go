package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vsl-server/internal/generation"
	"vsl-server/internal/observability"
	"vsl-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound     = errors.New("business profile not found")
	ErrInvalidTone         = errors.New("invalid tone")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

type ProfileProcessor struct {
	store     ProfileStore
	languages LanguageChecker
	logger    *observability.Logger
}

func New(store ProfileStore, languages LanguageChecker, logger *observability.Logger) ProfileProcessor {
	return ProfileProcessor{store: store, languages: languages, logger: logger}
}

// ProfileInput is the editable part of a business profile
type ProfileInput struct {
	Offer    string
	Avatar   string
	Problems string
	Desires  string
	Tone     string
	Language string
}

type Profile struct {
	ID        uuid.UUID `json:"id"`
	Offer     string    `json:"offer"`
	Avatar    string    `json:"avatar"`
	Problems  string    `json:"problems"`
	Desires   string    `json:"desires"`
	Tone      string    `json:"tone"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func fromStore(p store.BusinessProfile) Profile {
	return Profile{
		ID:        p.ID,
		Offer:     p.Offer,
		Avatar:    p.Avatar,
		Problems:  p.Problems,
		Desires:   p.Desires,
		Tone:      p.Tone,
		Language:  p.Language,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// params validates input and fills in the default language.
func (p *ProfileProcessor) params(input ProfileInput) (store.BusinessProfileParams, error) {
	if !generation.Tone(input.Tone).Valid() {
		return store.BusinessProfileParams{}, fmt.Errorf("%w: %q", ErrInvalidTone, input.Tone)
	}
	language := strings.TrimSpace(input.Language)
	if language == "" {
		language = p.languages.DefaultCode()
	}
	if !p.languages.Supports(language) {
		return store.BusinessProfileParams{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	return store.BusinessProfileParams{
		Offer:    input.Offer,
		Avatar:   input.Avatar,
		Problems: input.Problems,
		Desires:  input.Desires,
		Tone:     input.Tone,
		Language: language,
	}, nil
}

func (p *ProfileProcessor) CreateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (Profile, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID})

	params, err := p.params(input)
	if err != nil {
		return Profile{}, err
	}

	profile, err := p.store.CreateBusinessProfile(ctx, userID, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create business profile", err)
		return Profile{}, err
	}
	return fromStore(profile), nil
}

func (p *ProfileProcessor) ListProfiles(ctx context.Context, userID uuid.UUID) ([]Profile, error) {
	profiles, err := p.store.ListBusinessProfiles(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list business profiles", err)
		return nil, err
	}
	out := make([]Profile, len(profiles))
	for i, profile := range profiles {
		out[i] = fromStore(profile)
	}
	return out, nil
}

func (p *ProfileProcessor) GetProfile(ctx context.Context, userID, profileID uuid.UUID) (Profile, error) {
	profile, err := p.store.GetBusinessProfile(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Profile{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to get business profile", err)
		return Profile{}, err
	}
	return fromStore(profile), nil
}

func (p *ProfileProcessor) UpdateProfile(ctx context.Context, userID, profileID uuid.UUID, input ProfileInput) (Profile, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID},
		observability.Field{Key: "business_profile_id", Value: profileID},
	)

	params, err := p.params(input)
	if err != nil {
		return Profile{}, err
	}

	profile, err := p.store.UpdateBusinessProfile(ctx, userID, profileID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Profile{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to update business profile", err)
		return Profile{}, err
	}
	return fromStore(profile), nil
}

func (p *ProfileProcessor) DeleteProfile(ctx context.Context, userID, profileID uuid.UUID) error {
	err := p.store.DeleteBusinessProfile(ctx, userID, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to delete business profile", err)
		return err
	}
	return nil
}
