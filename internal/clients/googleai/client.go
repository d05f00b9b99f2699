package googleai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vsl-server/internal/observability"
	"vsl-server/internal/structured"

	"google.golang.org/genai"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=client.go -destination=mocks_test.go -package=googleai

var (
	ErrNoCandidates = errors.New("response has no candidates")
	ErrTruncated    = errors.New("response truncated at max output tokens")
)

// ContentGenerator is the slice of the genai models service this client uses.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client is a structured generation backend for Gemini models.
type Client struct {
	models ContentGenerator
	model  string
	logger *observability.Logger
}

// NewClient connects to the Gemini API. timeout bounds every HTTP round trip.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration, logger *observability.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	return New(client.Models, model, logger), nil
}

func New(models ContentGenerator, model string, logger *observability.Logger) *Client {
	return &Client{
		models: models,
		model:  model,
		logger: logger,
	}
}

// GenerateJSON runs one JSON-mode generation constrained by the request schema.
func (c *Client) GenerateJSON(ctx context.Context, req structured.Request) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: c.model})

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(req.Temperature),
		MaxOutputTokens:  req.MaxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenaiSchema(req.Schema),
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	if reason := resp.Candidates[0].FinishReason; reason == genai.FinishReasonMaxTokens {
		c.logger.Warn(ctx, "response truncated at max output tokens")
		return "", ErrTruncated
	}

	return resp.Text(), nil
}

func toGenaiSchema(s *structured.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description:      s.Description,
		Required:         s.Required,
		PropertyOrdering: s.Order,
		Items:            toGenaiSchema(s.Items),
		MinLength:        s.MinLength,
		MaxLength:        s.MaxLength,
		MinItems:         s.MinItems,
		MaxItems:         s.MaxItems,
	}
	switch s.Type {
	case structured.TypeObject:
		out.Type = genai.TypeObject
	case structured.TypeArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}
