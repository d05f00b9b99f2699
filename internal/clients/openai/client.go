package openai

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"vsl-server/internal/observability"
	"vsl-server/internal/structured"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	ErrNoChoices = errors.New("completion has no choices")
	ErrTruncated = errors.New("completion truncated at max tokens")
)

var schemaNameInvalid = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// CompletionFunc creates one chat completion.
type CompletionFunc func(ctx context.Context, params openaisdk.ChatCompletionNewParams, opts ...option.RequestOption) (*openaisdk.ChatCompletion, error)

// Client is a structured generation backend for OpenAI chat models.
type Client struct {
	complete CompletionFunc
	model    string
	logger   *observability.Logger
}

// NewClient builds a client without SDK retries; every GenerateJSON is one request.
func NewClient(apiKey, model string, timeout time.Duration, logger *observability.Logger) *Client {
	sdk := openaisdk.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(timeout),
		option.WithMaxRetries(0),
	)
	return New(sdk.Chat.Completions.New, model, logger)
}

func New(complete CompletionFunc, model string, logger *observability.Logger) *Client {
	return &Client{
		complete: complete,
		model:    model,
		logger:   logger,
	}
}

// GenerateJSON asks for a completion in json_schema response format.
func (c *Client) GenerateJSON(ctx context.Context, req structured.Request) (string, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "model", Value: c.model})

	params := openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(req.Prompt),
		},
		Temperature:         openaisdk.Float(float64(req.Temperature)),
		MaxCompletionTokens: openaisdk.Int(int64(req.MaxOutputTokens)),
		ResponseFormat: openaisdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openaisdk.ResponseFormatJSONSchemaParam{
				JSONSchema: openaisdk.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName(req.Operation),
					Schema: toJSONSchema(req.Schema),
					// Strict mode rejects length keywords; bounds are checked after decoding.
					Strict: openaisdk.Bool(false),
				},
			},
		},
	}

	completion, err := c.complete(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", ErrNoChoices
	}

	choice := completion.Choices[0]
	if choice.FinishReason == "length" {
		c.logger.Warn(ctx, "completion truncated at max tokens")
		return "", ErrTruncated
	}
	return choice.Message.Content, nil
}

func schemaName(operation string) string {
	if operation == "" {
		return "response"
	}
	return schemaNameInvalid.ReplaceAllString(operation, "_")
}

// toJSONSchema renders the schema as a JSON Schema document.
func toJSONSchema(s *structured.Schema) map[string]any {
	if s == nil {
		return map[string]any{"type": "object"}
	}

	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.MinLength != nil {
		out["minLength"] = *s.MinLength
	}
	if s.MaxLength != nil {
		out["maxLength"] = *s.MaxLength
	}
	if s.MinItems != nil {
		out["minItems"] = *s.MinItems
	}
	if s.MaxItems != nil {
		out["maxItems"] = *s.MaxItems
	}
	if s.Items != nil {
		out["items"] = toJSONSchema(s.Items)
	}
	if s.Type == structured.TypeObject {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = toJSONSchema(prop)
		}
		out["properties"] = props
		out["additionalProperties"] = false
		if len(s.Required) > 0 {
			out["required"] = s.Required
		}
	}
	return out
}
