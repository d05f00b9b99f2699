package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for persisting a generated campaign
type CreateCampaignParams struct {
	UserID            uuid.UUID
	BusinessProfileID uuid.UUID
	VSLTitle          string
	VSLScriptA        string
	VSLScriptB        string
	VideoScripts      []string
	AdCopyA           string
	AdCopyB           string
	HeadlineA         string
	HeadlineB         string
	Language          string
	BusinessProfile   ProfileSnapshot
	GeneratedAt       time.Time
}

const campaignColumns = `id, user_id, business_profile_id, vsl_title, vsl_script_a, vsl_script_b,
    video_scripts, ad_copy_a, ad_copy_b, headline_a, headline_b, language, business_profile,
    generated_at, created_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (user_id, business_profile_id, vsl_title, vsl_script_a, vsl_script_b,
    video_scripts, ad_copy_a, ad_copy_b, headline_a, headline_b, language, business_profile, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + campaignColumns

// CreateCampaign inserts a campaign. Campaigns are never updated afterwards.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.UserID,
		params.BusinessProfileID,
		params.VSLTitle,
		params.VSLScriptA,
		params.VSLScriptB,
		StringList(params.VideoScripts),
		params.AdCopyA,
		params.AdCopyB,
		params.HeadlineA,
		params.HeadlineB,
		params.Language,
		params.BusinessProfile,
		params.GeneratedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT id, business_profile_id, vsl_title, language, created_at
FROM campaigns
WHERE user_id = $1
ORDER BY created_at DESC
`

func (s *Store) ListCampaigns(ctx context.Context, userID uuid.UUID) ([]CampaignSummary, error) {
	campaigns := []CampaignSummary{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlGetCampaign = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND user_id = $2
`

// GetCampaign returns ErrNotFound when the campaign is missing or owned by another user.
func (s *Store) GetCampaign(ctx context.Context, userID, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaign, campaignID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `
DELETE FROM campaigns
WHERE id = $1 AND user_id = $2
`

func (s *Store) DeleteCampaign(ctx context.Context, userID, campaignID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCampaign, campaignID, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
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
