package bootstrap

import (
	"context"
	"fmt"

	"vsl-server/internal/clients/googleai"
	"vsl-server/internal/clients/openai"
	redisClient "vsl-server/internal/clients/redis"
	"vsl-server/internal/config"
	"vsl-server/internal/generation"
	"vsl-server/internal/languages"
	"vsl-server/internal/observability"
	"vsl-server/internal/ratelimit"
	"vsl-server/internal/store"
	"vsl-server/internal/structured"

	authHandler "vsl-server/internal/auth/handler"
	authProcessor "vsl-server/internal/auth/processor"
	campaignHandler "vsl-server/internal/campaign/handler"
	campaignProcessor "vsl-server/internal/campaign/processor"
	profileHandler "vsl-server/internal/profiles/handler"
	profileProcessor "vsl-server/internal/profiles/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store     store.Store
	Logger    *observability.Logger
	Languages *languages.Directory

	// Handlers
	AuthHandler     authHandler.Handler
	ProfileHandler  profileHandler.Handler
	CampaignHandler campaignHandler.Handler

	RateLimiter *ratelimit.Service

	// Redis client (for cleanup), nil when disabled
	Redis *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Database.RunMigrations {
		if err := deps.Store.Migrate(ctx); err != nil {
			deps.Cleanup(ctx)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	deps.Languages, err = languages.Load(cfg.Generation.DefaultLanguage)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("failed to load languages: %w", err)
	}

	backend, err := newBackend(ctx, cfg, logger)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, err
	}
	generator := generation.New(structured.New(backend, logger), deps.Languages, logger)

	// Redis is optional; without it generation is not rate limited
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	var window ratelimit.WindowStore
	if deps.Redis.IsEnabled() {
		window = deps.Redis
	}
	deps.RateLimiter = ratelimit.NewService(window, cfg.RateLimit.GenerationPerMinute, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, cfg.Auth, logger)
	deps.AuthHandler = authHandler.New(&authProc, logger)

	// Initialize profile processor and handler
	profileProc := profileProcessor.New(&deps.Store, deps.Languages, logger)
	deps.ProfileHandler = profileHandler.New(&profileProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, generator, deps.Languages, logger)
	deps.CampaignHandler = campaignHandler.New(&campaignProc, logger)

	return deps, nil
}

// newBackend selects the model provider named in the configuration
func newBackend(ctx context.Context, cfg *config.Config, logger *observability.Logger) (structured.Backend, error) {
	switch cfg.Generation.Provider {
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.Services.OpenAIAPIKey, cfg.Generation.OpenAIModel, cfg.Generation.Timeout, logger), nil
	case config.ProviderGoogleAI:
		client, err := googleai.NewClient(ctx, cfg.Services.GoogleAIAPIKey, cfg.Generation.GoogleAIModel, cfg.Generation.Timeout, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create google ai client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Generation.Provider, config.ErrUnknownProvider)
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup(ctx context.Context) {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
