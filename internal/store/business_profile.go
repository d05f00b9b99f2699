package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// BusinessProfileParams holds the editable fields of a business profile
type BusinessProfileParams struct {
	Offer    string
	Avatar   string
	Problems string
	Desires  string
	Tone     string
	Language string
}

const profileColumns = `id, user_id, offer, avatar, problems, desires, tone, language, created_at, updated_at`

const sqlCreateBusinessProfile = `
INSERT INTO business_profiles (user_id, offer, avatar, problems, desires, tone, language)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + profileColumns

func (s *Store) CreateBusinessProfile(ctx context.Context, userID uuid.UUID, params BusinessProfileParams) (BusinessProfile, error) {
	var profile BusinessProfile
	err := s.db.GetContext(ctx, &profile, sqlCreateBusinessProfile,
		userID,
		params.Offer,
		params.Avatar,
		params.Problems,
		params.Desires,
		params.Tone,
		params.Language)
	if err != nil {
		s.logger.Error(ctx, "failed to create business profile", err)
		return BusinessProfile{}, fmt.Errorf("failed to create business profile: %w", err)
	}
	return profile, nil
}

const sqlListBusinessProfiles = `
SELECT ` + profileColumns + `
FROM business_profiles
WHERE user_id = $1
ORDER BY created_at DESC
`

func (s *Store) ListBusinessProfiles(ctx context.Context, userID uuid.UUID) ([]BusinessProfile, error) {
	profiles := []BusinessProfile{}
	err := s.db.SelectContext(ctx, &profiles, sqlListBusinessProfiles, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list business profiles", err)
		return nil, fmt.Errorf("failed to list business profiles: %w", err)
	}
	return profiles, nil
}

const sqlGetBusinessProfile = `
SELECT ` + profileColumns + `
FROM business_profiles
WHERE id = $1 AND user_id = $2
`

// GetBusinessProfile returns ErrNotFound when the profile is missing or owned by another user.
func (s *Store) GetBusinessProfile(ctx context.Context, userID, profileID uuid.UUID) (BusinessProfile, error) {
	var profile BusinessProfile
	err := s.db.GetContext(ctx, &profile, sqlGetBusinessProfile, profileID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BusinessProfile{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get business profile", err)
		return BusinessProfile{}, fmt.Errorf("failed to get business profile: %w", err)
	}
	return profile, nil
}

const sqlUpdateBusinessProfile = `
UPDATE business_profiles
SET offer = $3, avatar = $4, problems = $5, desires = $6, tone = $7, language = $8, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + profileColumns

func (s *Store) UpdateBusinessProfile(ctx context.Context, userID, profileID uuid.UUID, params BusinessProfileParams) (BusinessProfile, error) {
	var profile BusinessProfile
	err := s.db.GetContext(ctx, &profile, sqlUpdateBusinessProfile,
		profileID,
		userID,
		params.Offer,
		params.Avatar,
		params.Problems,
		params.Desires,
		params.Tone,
		params.Language)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BusinessProfile{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update business profile", err)
		return BusinessProfile{}, fmt.Errorf("failed to update business profile: %w", err)
	}
	return profile, nil
}

const sqlDeleteBusinessProfile = `
DELETE FROM business_profiles
WHERE id = $1 AND user_id = $2
`

// DeleteBusinessProfile removes the profile and, by cascade, its campaigns.
func (s *Store) DeleteBusinessProfile(ctx context.Context, userID, profileID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteBusinessProfile, profileID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete business profile", err)
		return fmt.Errorf("failed to delete business profile: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
