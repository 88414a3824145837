package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"idea-scout/internal/models"
	"idea-scout/shared/config"
)

// ErrNoResults signals that a search query matched nothing. The caller
// surfaces it as a not-found, distinct from an upstream failure.
var ErrNoResults = errors.New("no search results")

// UpstreamError preserves the status and body of a YouTube API HTTP error
// so the caller can pass them through verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube api error (status %d): %s", e.StatusCode, e.Body)
}

type Client struct {
	service *youtube.Service
}

func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// Search returns up to maxResults video IDs matching the query in the given
// region.
func (c *Client) Search(ctx context.Context, query, region string, maxResults int64) ([]string, error) {
	call := c.service.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		RegionCode(region).
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, wrapUpstream("search", err)
	}

	var ids []string
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoResults
	}

	log.Debug().Msgf("Search for %q returned %d videos", query, len(ids))
	return ids, nil
}

// Videos fetches snippet, content, and statistics metadata for the given
// IDs in batches of 50.
func (c *Client) Videos(ctx context.Context, ids []string) ([]models.RawVideo, error) {
	const batchSize = 50

	var videos []models.RawVideo
	for i := 0; i < len(ids); i += batchSize {
		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		call := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(strings.Join(ids[i:end], ",")).
			Context(ctx)

		response, err := call.Do()
		if err != nil {
			return nil, wrapUpstream("videos", err)
		}

		for _, item := range response.Items {
			videos = append(videos, mapVideoItem(item))
		}
	}

	return videos, nil
}

func mapVideoItem(item *youtube.Video) models.RawVideo {
	rv := models.RawVideo{ID: item.Id}

	if item.Snippet != nil {
		rv.Title = item.Snippet.Title
		rv.ChannelID = item.Snippet.ChannelId
		rv.ChannelTitle = item.Snippet.ChannelTitle
		rv.Thumbnail = thumbnailURL(item.Snippet.Thumbnails)

		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			rv.PublishedAt = publishedAt
		}
	}

	if item.ContentDetails != nil {
		rv.Duration = item.ContentDetails.Duration
	}

	// Missing statistics are treated as zero views, not an error.
	if item.Statistics != nil {
		rv.ViewCount = int64(item.Statistics.ViewCount)
	}

	return rv
}

func thumbnailURL(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	if details.Medium != nil {
		return details.Medium.Url
	}
	if details.Default != nil {
		return details.Default.Url
	}
	return ""
}

func wrapUpstream(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		body := gerr.Body
		if body == "" {
			body = gerr.Message
		}
		return &UpstreamError{StatusCode: gerr.Code, Body: body}
	}
	return fmt.Errorf("%s call failed: %w", op, err)
}
