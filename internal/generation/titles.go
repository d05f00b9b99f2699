package generation

import (
	"context"
	"fmt"

	"vsl-server/internal/observability"
	"vsl-server/internal/structured"
)

const titleCount = 6

type titlesOutput struct {
	Titles []string `json:"titles" validate:"len=6,dive,min=10,max=200"`
}

var titlesSchema = structured.Object(
	structured.Field("titles", structured.ArrayOf(structured.String(10, 200), titleCount).
		Describe("Six practical VSL titles, 8-15 words each")),
)

// GenerateTitles returns exactly six candidate VSL titles for the profile.
func (g *Generator) GenerateTitles(ctx context.Context, profile BusinessProfile) ([]string, error) {
	language := g.effectiveLanguage(profile, "")
	ctx = observability.WithFields(ctx, observability.Field{Key: "language", Value: language})

	prompt, err := render("titles", g.promptData(profile, "", language))
	if err != nil {
		g.logger.Error(ctx, "failed to build titles prompt", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var out titlesOutput
	err = g.client.Generate(ctx, structured.Request{
		Operation:       "vsl_titles",
		Prompt:          prompt,
		Schema:          titlesSchema,
		Temperature:     0.8,
		MaxOutputTokens: 1000,
	}, &out)
	if err != nil {
		g.logger.Error(ctx, "failed to generate titles", err)
		return nil, fmt.Errorf("title generation failed: %w", err)
	}

	g.logger.Info(ctx, "generated titles")
	return out.Titles, nil
}
