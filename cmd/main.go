package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"idea-scout/internal/analysis"
	"idea-scout/server"
	"idea-scout/shared/ai"
	"idea-scout/shared/config"
	"idea-scout/shared/monitoring"
	"idea-scout/shared/youtube"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msgf("Failed to load configuration: %v", err)
	}

	if cfg.YouTube.APIKey == "" {
		log.Warn().Msg("YOUTUBE_API_KEY not set; analyze requests will fail until configured")
	}
	if cfg.AI.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; title suggestions will use fallback templates")
	}

	// Context that responds to signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	corpus, titles, err := buildCollaborators(ctx, cfg)
	if err != nil {
		log.Fatal().Msgf("Failed to create API clients: %v", err)
	}

	srv := server.New(cfg, corpus, titles, monitoring.NewMonitor())

	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Msgf("Server failed: %v", err)
	}
}

// buildCollaborators constructs a client for each API key that is actually
// configured. A missing key yields a nil collaborator rather than a boot
// failure: analyze requests then report the missing credential, and title
// generation falls back to templates.
func buildCollaborators(ctx context.Context, cfg *config.Config) (server.CorpusSource, analysis.TitleGenerator, error) {
	var corpus server.CorpusSource
	if cfg.YouTube.APIKey != "" {
		client, err := youtube.NewClient(ctx, &cfg.YouTube)
		if err != nil {
			return nil, nil, fmt.Errorf("youtube client: %w", err)
		}
		corpus = client
	}

	var titles analysis.TitleGenerator
	if cfg.AI.GeminiAPIKey != "" {
		generator, err := ai.NewGenerator(ctx, &cfg.AI)
		if err != nil {
			return nil, nil, fmt.Errorf("title generator: %w", err)
		}
		titles = generator
	}

	return corpus, titles, nil
}
