package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"idea-scout/internal/analysis"
	"idea-scout/shared/youtube"
)

type analyzeRequest struct {
	Idea   string `query:"idea" validate:"required"`
	Region string `query:"region"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze runs the full pipeline: search, metadata lookup, normalize,
// score, assemble. The three collaborator calls are strictly sequential;
// nothing outlives the request.
func (s *Server) handleAnalyze(c echo.Context) error {
	start := time.Now()

	req, err := s.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: bindErrorMessage(err)})
	}

	if s.cfg.YouTube.APIKey == "" {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "YouTube API key is not configured"})
	}

	ctx := c.Request().Context()
	now := s.now()

	ids, err := s.corpus.Search(ctx, req.Idea, req.Region, s.cfg.YouTube.MaxResults)
	if err != nil {
		return s.replyError(c, err, start)
	}

	raw, err := s.corpus.Videos(ctx, ids)
	if err != nil {
		return s.replyError(c, err, start)
	}

	corpus := analysis.Normalize(raw, now)
	if len(corpus) == 0 {
		return s.replyError(c, youtube.ErrNoResults, start)
	}

	report := analysis.BuildReport(ctx, req.Idea, corpus, s.titles, now)

	s.monitor.RecordSuccess(fmt.Sprintf("analyzed %d videos for %q", len(corpus), req.Idea), time.Since(start))
	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleScan(c echo.Context) error {
	start := time.Now()

	req, err := s.bindRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: bindErrorMessage(err)})
	}

	if s.cfg.YouTube.APIKey == "" {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "YouTube API key is not configured"})
	}

	report, err := s.scanner.Scan(c.Request().Context(), req.Idea, req.Region, s.now())
	if err != nil {
		return s.replyError(c, err, start)
	}

	s.monitor.RecordSuccess(fmt.Sprintf("scanned %d sub-topics for %q", len(report.Topics), req.Idea), time.Since(start))
	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleHealth(c echo.Context) error {
	if s.monitor.IsHealthy() {
		return c.String(http.StatusOK, "OK - "+s.monitor.StatusSummary())
	}
	return c.String(http.StatusServiceUnavailable, "Service unhealthy - "+s.monitor.StatusSummary())
}

func (s *Server) bindRequest(c echo.Context) (*analyzeRequest, error) {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	if req.Region == "" {
		req.Region = s.cfg.YouTube.Region
	}
	return &req, nil
}

// bindErrorMessage turns a bind or validation failure into a client-facing
// message. Field-level detail only for validation errors; a bind failure gets
// a generic message rather than echoing internals.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Idea" {
				return "idea is required"
			}
		}
		return "invalid request parameters"
	}
	return "malformed query parameters"
}

// replyError maps pipeline failures onto the response taxonomy: not-found
// for an empty corpus, passthrough for upstream HTTP errors, generic 500
// otherwise.
func (s *Server) replyError(c echo.Context, err error, start time.Time) error {
	s.monitor.RecordFailure(err, time.Since(start))

	if errors.Is(err, youtube.ErrNoResults) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no videos found for this idea"})
	}

	var upstream *youtube.UpstreamError
	if errors.As(err, &upstream) {
		return c.JSON(upstream.StatusCode, errorResponse{Error: upstream.Body})
	}

	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
}
