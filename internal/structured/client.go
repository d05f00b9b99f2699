// Package structured asks a text-generation backend for JSON of a declared
// shape and decodes and bound-checks the answer.
package structured

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"vsl-server/internal/observability"

	"github.com/go-playground/validator/v10"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=client.go -destination=mocks_test.go -package=structured

var (
	ErrGenerationFailed = errors.New("generation failed")
	ErrEmptyPrompt      = errors.New("prompt is empty")
	ErrEmptyResponse    = errors.New("backend returned no content")
	ErrInvalidOutput    = errors.New("output violates declared shape")
)

// Request is one structured generation call.
type Request struct {
	// Operation names the call in logs and, for some backends, the schema.
	Operation       string
	Prompt          string
	Schema          *Schema
	Temperature     float32
	MaxOutputTokens int32
}

// Backend performs a single call to a text-generation service and returns
// the raw JSON text it produced.
type Backend interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

// Client turns backend output into validated values. It makes exactly one
// backend call per Generate and never retries.
type Client struct {
	backend  Backend
	validate *validator.Validate
	logger   *observability.Logger
}

func New(backend Backend, logger *observability.Logger) *Client {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return &Client{
		backend:  backend,
		validate: v,
		logger:   logger,
	}
}

// Generate fills out, which must be a pointer to a struct carrying validate
// tags, from one backend call. Every failure wraps ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, req Request, out any) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: req.Operation},
		observability.Field{Key: "temperature", Value: req.Temperature},
		observability.Field{Key: "max_output_tokens", Value: req.MaxOutputTokens},
	)

	if strings.TrimSpace(req.Prompt) == "" {
		return fmt.Errorf("%w: %s: %w", ErrGenerationFailed, req.Operation, ErrEmptyPrompt)
	}

	start := time.Now()
	raw, err := c.backend.GenerateJSON(ctx, req)
	latency := time.Since(start)
	c.logger.Metrics(ctx,
		observability.MetricField{Key: "generation_latency_ms", Value: latency.Milliseconds()},
		observability.MetricField{Key: "generation_ok", Value: err == nil},
	)
	if err != nil {
		c.logger.Error(ctx, "backend call failed", err)
		return fmt.Errorf("%w: %s: %w", ErrGenerationFailed, req.Operation, err)
	}

	cleaned := cleanJSON(raw)
	if cleaned == "" {
		c.logger.Error(ctx, "backend returned empty output", ErrEmptyResponse)
		return fmt.Errorf("%w: %s: %w", ErrGenerationFailed, req.Operation, ErrEmptyResponse)
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		c.logger.Error(ctx, "failed to decode backend output", err)
		return fmt.Errorf("%w: %s: failed to decode output: %w", ErrGenerationFailed, req.Operation, err)
	}

	if err := c.validate.StructCtx(ctx, out); err != nil {
		c.logger.Error(ctx, "backend output out of bounds", err)
		return fmt.Errorf("%w: %s: %w: %s", ErrGenerationFailed, req.Operation, ErrInvalidOutput, describe(err))
	}

	return nil
}

// cleanJSON strips markdown code fences some models wrap JSON in.
func cleanJSON(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

func describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
