package generation

import (
	"context"
	"fmt"
	"strings"

	"vsl-server/internal/observability"
	"vsl-server/internal/structured"

	"golang.org/x/sync/errgroup"
)

type scriptVariant struct {
	name     string
	emphasis string
}

var (
	variantA = scriptVariant{name: "A", emphasis: "Create VERSION A with emphasis on transformation and results:"}
	variantB = scriptVariant{name: "B", emphasis: "Create VERSION B with emphasis on methodology and expertise:"}
)

type scriptSections struct {
	Hook             string `json:"hook" validate:"min=50,max=300"`
	ProblemAgitation string `json:"problemAgitation" validate:"min=100,max=600"`
	AuthorityStory   string `json:"authorityStory" validate:"min=100,max=600"`
	SolutionReveal   string `json:"solutionReveal" validate:"min=150,max=1200"`
	SocialProof      string `json:"socialProof" validate:"min=100,max=500"`
	Offer            string `json:"offer" validate:"min=100,max=500"`
	CallToAction     string `json:"callToAction" validate:"min=50,max=400"`
}

type scriptOutput struct {
	VSLScript scriptSections `json:"vslScript"`
}

var scriptSchema = structured.Object(
	structured.Field("vslScript", structured.Object(
		structured.Field("hook", structured.String(50, 300)),
		structured.Field("problemAgitation", structured.String(100, 600)),
		structured.Field("authorityStory", structured.String(100, 600)),
		structured.Field("solutionReveal", structured.String(150, 1200)),
		structured.Field("socialProof", structured.String(100, 500)),
		structured.Field("offer", structured.String(100, 500)),
		structured.Field("callToAction", structured.String(50, 400)),
	)),
)

type documentSection struct {
	Heading string
	Body    string
}

type documentData struct {
	Title    string
	Profile  BusinessProfile
	Sections []documentSection
}

// GenerateScripts produces both VSL variants concurrently. Either variant
// failing fails the whole call; no single variant is ever returned.
func (g *Generator) GenerateScripts(ctx context.Context, profile BusinessProfile, title, language string) (ScriptBundle, error) {
	if strings.TrimSpace(title) == "" {
		return ScriptBundle{}, fmt.Errorf("%w: title is empty", ErrInvalidInput)
	}
	language = g.effectiveLanguage(profile, language)
	ctx = observability.WithFields(ctx, observability.Field{Key: "language", Value: language})

	var scriptA, scriptB string
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		scriptA, err = g.generateScript(ctx, profile, title, language, variantA)
		return err
	})
	eg.Go(func() error {
		var err error
		scriptB, err = g.generateScript(ctx, profile, title, language, variantB)
		return err
	})
	if err := eg.Wait(); err != nil {
		return ScriptBundle{}, err
	}

	return ScriptBundle{ScriptVariantA: scriptA, ScriptVariantB: scriptB}, nil
}

func (g *Generator) generateScript(ctx context.Context, profile BusinessProfile, title, language string, variant scriptVariant) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "variant", Value: variant.name})

	data := g.promptData(profile, title, language)
	data.Emphasis = variant.emphasis
	prompt, err := render("vsl", data)
	if err != nil {
		g.logger.Error(ctx, "failed to build script prompt", err)
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	var out scriptOutput
	err = g.client.Generate(ctx, structured.Request{
		Operation:       "vsl_script_variant_" + strings.ToLower(variant.name),
		Prompt:          prompt,
		Schema:          scriptSchema,
		Temperature:     0.8,
		MaxOutputTokens: 2000,
	}, &out)
	if err != nil {
		g.logger.Error(ctx, "failed to generate script variant", err)
		return "", fmt.Errorf("VSL version %s generation failed: %w", variant.name, err)
	}

	doc, err := formatScript(title, profile, out.VSLScript)
	if err != nil {
		g.logger.Error(ctx, "failed to format script variant", err)
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return doc, nil
}

// formatScript lays the seven sections out as one markdown document.
func formatScript(title string, profile BusinessProfile, s scriptSections) (string, error) {
	return render("vsl_document", documentData{
		Title:   title,
		Profile: profile,
		Sections: []documentSection{
			{Heading: "HOOK (0-15 seconds)", Body: s.Hook},
			{Heading: "PROBLEM AGITATION (15 seconds - 1 minute)", Body: s.ProblemAgitation},
			{Heading: "AUTHORITY/STORY (1-2 minutes)", Body: s.AuthorityStory},
			{Heading: "EDUCATIONAL VALUE (2-3 minutes)", Body: s.SolutionReveal},
			{Heading: "SOCIAL PROOF (3-3.5 minutes)", Body: s.SocialProof},
			{Heading: "OFFER (3.5-4 minutes)", Body: s.Offer},
			{Heading: "CALL TO ACTION (4 minutes)", Body: s.CallToAction},
		},
	})
}
