package generation

import (
	"context"
	"fmt"
	"strings"

	"vsl-server/internal/observability"
	"vsl-server/internal/structured"

	"golang.org/x/sync/errgroup"
)

const videoScriptCount = 4

type videoScript struct {
	Title    string `json:"title" validate:"required"`
	Script   string `json:"script" validate:"min=100,max=1200"`
	Duration string `json:"duration,omitempty"`
}

type videoScriptsOutput struct {
	VideoScripts []videoScript `json:"videoScripts" validate:"len=4,dive"`
}

type adCopyOutput struct {
	AdCopyA string `json:"adCopyA" validate:"min=100,max=800"`
	AdCopyB string `json:"adCopyB" validate:"min=100,max=800"`
}

type headlinesOutput struct {
	HeadlineA string `json:"headlineA" validate:"min=5,max=50"`
	HeadlineB string `json:"headlineB" validate:"min=5,max=50"`
}

var (
	videoScriptsSchema = structured.Object(
		structured.Field("videoScripts", structured.ArrayOf(structured.Object(
			structured.Field("title", structured.Text()),
			structured.Field("script", structured.String(100, 1200)),
			structured.OptionalField("duration", structured.Text()),
		), videoScriptCount)),
	)
	adCopySchema = structured.Object(
		structured.Field("adCopyA", structured.String(100, 800)),
		structured.Field("adCopyB", structured.String(100, 800)),
	)
	headlinesSchema = structured.Object(
		structured.Field("headlineA", structured.String(5, 50)),
		structured.Field("headlineB", structured.String(5, 50)),
	)
)

// GenerateAds produces the video scripts, ad copy and headlines concurrently.
func (g *Generator) GenerateAds(ctx context.Context, profile BusinessProfile, title, language string) (AdsBundle, error) {
	if strings.TrimSpace(title) == "" {
		return AdsBundle{}, fmt.Errorf("%w: title is empty", ErrInvalidInput)
	}
	language = g.effectiveLanguage(profile, language)
	ctx = observability.WithFields(ctx, observability.Field{Key: "language", Value: language})
	data := g.promptData(profile, title, language)

	var (
		videos    videoScriptsOutput
		adCopy    adCopyOutput
		headlines headlinesOutput
		eg        errgroup.Group
	)
	eg.Go(func() error {
		return g.generateAdPart(ctx, "ads_video", "Video scripts", data, 0.9, 2000, videoScriptsSchema, &videos)
	})
	eg.Go(func() error {
		return g.generateAdPart(ctx, "ads_copy", "Ad copy", data, 0.8, 1200, adCopySchema, &adCopy)
	})
	eg.Go(func() error {
		return g.generateAdPart(ctx, "ads_headlines", "Headlines", data, 0.7, 400, headlinesSchema, &headlines)
	})
	if err := eg.Wait(); err != nil {
		return AdsBundle{}, err
	}

	scripts := make([]string, len(videos.VideoScripts))
	for i, v := range videos.VideoScripts {
		scripts[i] = fmt.Sprintf("**Video Script %d**\n\n%s", i+1, v.Script)
	}

	return AdsBundle{
		VideoScripts:     scripts,
		AdCopyVariantA:   adCopy.AdCopyA,
		AdCopyVariantB:   adCopy.AdCopyB,
		HeadlineVariantA: headlines.HeadlineA,
		HeadlineVariantB: headlines.HeadlineB,
	}, nil
}

func (g *Generator) generateAdPart(ctx context.Context, tmpl, label string, data promptData, temperature float32, maxTokens int32, schema *structured.Schema, out any) error {
	prompt, err := render(tmpl, data)
	if err != nil {
		g.logger.Error(ctx, "failed to build ads prompt", err)
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	err = g.client.Generate(ctx, structured.Request{
		Operation:       tmpl,
		Prompt:          prompt,
		Schema:          schema,
		Temperature:     temperature,
		MaxOutputTokens: maxTokens,
	}, out)
	if err != nil {
		g.logger.Error(ctx, fmt.Sprintf("%s generation failed", label), err)
		return fmt.Errorf("%s generation failed: %w", label, err)
	}
	return nil
}
