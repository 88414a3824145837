package server

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"idea-scout/internal/analysis"
	"idea-scout/internal/models"
	"idea-scout/internal/scanner"
	"idea-scout/shared/config"
	"idea-scout/shared/monitoring"
)

// CorpusSource is the retrieval collaborator contract: a bounded search
// followed by a bulk metadata lookup.
type CorpusSource interface {
	Search(ctx context.Context, query, region string, maxResults int64) ([]string, error)
	Videos(ctx context.Context, ids []string) ([]models.RawVideo, error)
}

type Server struct {
	cfg     *config.Config
	corpus  CorpusSource
	titles  analysis.TitleGenerator
	scanner *scanner.Scanner
	monitor *monitoring.Monitor
	echo    *echo.Echo
	now     func() time.Time
}

func New(cfg *config.Config, corpus CorpusSource, titles analysis.TitleGenerator, monitor *monitoring.Monitor) *Server {
	s := &Server{
		cfg:     cfg,
		corpus:  corpus,
		titles:  titles,
		scanner: scanner.New(corpus),
		monitor: monitor,
		now:     time.Now,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(accessLog)

	e.GET("/api/analyze", s.handleAnalyze)
	e.GET("/api/scan", s.handleScan)
	e.GET("/health", s.handleHealth)

	s.echo = e
	return s
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(fmt.Sprintf(":%d", s.cfg.Server.Port))
	}()

	log.Info().Msgf("Server listening on port %d", s.cfg.Server.Port)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	}
}

type requestValidator struct {
	validate *validator.Validate
}

// Validate returns the validator error unwrapped so handlers can inspect
// the failing fields when shaping the response.
func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func accessLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		log.Info().Msgf("%s %s -> %d (%v)",
			c.Request().Method, c.Request().RequestURI, c.Response().Status, time.Since(start))
		return err
	}
}
