// Package generation builds campaign copy from a business profile by prompting
// a structured text-generation backend.
package generation

import (
	"context"
	"errors"
	"time"

	"vsl-server/internal/languages"
	"vsl-server/internal/observability"
	"vsl-server/internal/structured"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks_test.go -package=generation vsl-server/internal/structured Backend

var (
	// ErrGenerationFailed marks any backend, decode or bounds failure.
	ErrGenerationFailed = structured.ErrGenerationFailed
	ErrInvalidInput     = errors.New("invalid generation input")
)

// Tone is the brand voice of a business profile.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFunny        Tone = "Funny"
	ToneInspiring    Tone = "Inspiring"
	ToneDirect       Tone = "Direct"
)

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFunny, ToneInspiring, ToneDirect:
		return true
	}
	return false
}

// BusinessProfile is the input every generator works from.
type BusinessProfile struct {
	Offer    string `json:"offer"`
	Avatar   string `json:"avatar"`
	Problems string `json:"problems"`
	Desires  string `json:"desires"`
	Tone     Tone   `json:"tone"`
	Language string `json:"language,omitempty"`
}

// ScriptBundle holds the two formatted VSL script variants.
type ScriptBundle struct {
	ScriptVariantA string `json:"script_variant_a"`
	ScriptVariantB string `json:"script_variant_b"`
}

// AdsBundle holds the Meta ads package.
type AdsBundle struct {
	VideoScripts     []string `json:"video_scripts"`
	AdCopyVariantA   string   `json:"ad_copy_variant_a"`
	AdCopyVariantB   string   `json:"ad_copy_variant_b"`
	HeadlineVariantA string   `json:"headline_variant_a"`
	HeadlineVariantB string   `json:"headline_variant_b"`
}

type Metadata struct {
	Title           string          `json:"title"`
	GeneratedAt     time.Time       `json:"generated_at"`
	BusinessProfile BusinessProfile `json:"business_profile"`
	Language        string          `json:"language"`
}

// Campaign is the merged result of one successful orchestration.
type Campaign struct {
	VSL      ScriptBundle `json:"vsl"`
	Ads      AdsBundle    `json:"ads"`
	Metadata Metadata     `json:"metadata"`
}

// StructuredGenerator fills out from one backend call or fails with ErrGenerationFailed.
type StructuredGenerator interface {
	Generate(ctx context.Context, req structured.Request, out any) error
}

// Generator holds the prompt builders and the shared generation client.
// It has no mutable state and is safe for concurrent use.
type Generator struct {
	client    StructuredGenerator
	languages *languages.Directory
	logger    *observability.Logger
	now       func() time.Time
}

func New(client StructuredGenerator, directory *languages.Directory, logger *observability.Logger) *Generator {
	return &Generator{
		client:    client,
		languages: directory,
		logger:    logger,
		now:       time.Now,
	}
}

// promptData is what the prompt templates render from.
type promptData struct {
	LanguagePrompt string
	Profile        BusinessProfile
	Title          string
	Emphasis       string
}

func (g *Generator) promptData(profile BusinessProfile, title, language string) promptData {
	return promptData{
		LanguagePrompt: g.languages.Prompt(language),
		Profile:        profile,
		Title:          title,
	}
}

// effectiveLanguage applies override, then profile language, then the default.
func (g *Generator) effectiveLanguage(profile BusinessProfile, override string) string {
	return g.languages.Resolve(override, profile.Language)
}
