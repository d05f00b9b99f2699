package generation

import (
	"context"
	"fmt"
	"strings"

	"vsl-server/internal/observability"

	"golang.org/x/sync/errgroup"
)

// GenerateCampaign runs the script and ads generators concurrently and merges
// them with generation metadata. It succeeds only if both succeed. Persisting
// the result is the caller's job.
func (g *Generator) GenerateCampaign(ctx context.Context, profile BusinessProfile, title, language string) (Campaign, error) {
	if strings.TrimSpace(title) == "" {
		return Campaign{}, fmt.Errorf("%w: title is empty", ErrInvalidInput)
	}
	language = g.effectiveLanguage(profile, language)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "language", Value: language},
		observability.Field{Key: "vsl_title", Value: title},
	)

	var (
		vsl ScriptBundle
		ads AdsBundle
		eg  errgroup.Group
	)
	eg.Go(func() error {
		var err error
		vsl, err = g.GenerateScripts(ctx, profile, title, language)
		return err
	})
	eg.Go(func() error {
		var err error
		ads, err = g.GenerateAds(ctx, profile, title, language)
		return err
	})
	if err := eg.Wait(); err != nil {
		g.logger.Error(ctx, "campaign generation failed", err)
		return Campaign{}, err
	}

	g.logger.Info(ctx, "generated campaign")
	return Campaign{
		VSL: vsl,
		Ads: ads,
		Metadata: Metadata{
			Title:           title,
			GeneratedAt:     g.now().UTC(),
			BusinessProfile: profile,
			Language:        language,
		},
	}, nil
}
