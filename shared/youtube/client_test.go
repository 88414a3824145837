package youtube

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
	youtubeapi "google.golang.org/api/youtube/v3"
)

func TestMapVideoItem(t *testing.T) {
	t.Run("FullItem", func(t *testing.T) {
		item := &youtubeapi.Video{
			Id: "vid-1",
			Snippet: &youtubeapi.VideoSnippet{
				Title:        "Some Title",
				ChannelId:    "chan-1",
				ChannelTitle: "Some Channel",
				PublishedAt:  "2026-08-15T10:00:00Z",
				Thumbnails: &youtubeapi.ThumbnailDetails{
					Medium:  &youtubeapi.Thumbnail{Url: "https://img/medium.jpg"},
					Default: &youtubeapi.Thumbnail{Url: "https://img/default.jpg"},
				},
			},
			ContentDetails: &youtubeapi.VideoContentDetails{Duration: "PT4M20S"},
			Statistics:     &youtubeapi.VideoStatistics{ViewCount: 12345},
		}

		rv := mapVideoItem(item)

		if rv.ID != "vid-1" || rv.Title != "Some Title" {
			t.Errorf("identity fields wrong: %+v", rv)
		}
		if rv.ChannelID != "chan-1" || rv.ChannelTitle != "Some Channel" {
			t.Errorf("channel fields wrong: %+v", rv)
		}
		if rv.Thumbnail != "https://img/medium.jpg" {
			t.Errorf("Thumbnail = %s, want medium URL", rv.Thumbnail)
		}
		if rv.Duration != "PT4M20S" {
			t.Errorf("Duration = %s, want PT4M20S", rv.Duration)
		}
		if rv.ViewCount != 12345 {
			t.Errorf("ViewCount = %d, want 12345", rv.ViewCount)
		}
		if rv.PublishedAt.IsZero() {
			t.Error("PublishedAt not parsed")
		}
	})

	t.Run("MissingStatistics", func(t *testing.T) {
		item := &youtubeapi.Video{
			Id:      "vid-2",
			Snippet: &youtubeapi.VideoSnippet{Title: "No stats"},
		}

		rv := mapVideoItem(item)
		if rv.ViewCount != 0 {
			t.Errorf("ViewCount = %d, want 0", rv.ViewCount)
		}
		if rv.Thumbnail != "" {
			t.Errorf("Thumbnail = %q, want empty", rv.Thumbnail)
		}
	})

	t.Run("DefaultThumbnailFallback", func(t *testing.T) {
		item := &youtubeapi.Video{
			Id: "vid-3",
			Snippet: &youtubeapi.VideoSnippet{
				Thumbnails: &youtubeapi.ThumbnailDetails{
					Default: &youtubeapi.Thumbnail{Url: "https://img/default.jpg"},
				},
			},
		}

		if rv := mapVideoItem(item); rv.Thumbnail != "https://img/default.jpg" {
			t.Errorf("Thumbnail = %s, want default URL", rv.Thumbnail)
		}
	})
}

func TestWrapUpstream(t *testing.T) {
	t.Run("GoogleAPIError", func(t *testing.T) {
		src := &googleapi.Error{Code: 403, Body: `{"error": "quotaExceeded"}`}
		err := wrapUpstream("search", fmt.Errorf("wrapped: %w", src))

		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("expected UpstreamError, got %T", err)
		}
		if upstream.StatusCode != 403 {
			t.Errorf("StatusCode = %d, want 403", upstream.StatusCode)
		}
		if upstream.Body != `{"error": "quotaExceeded"}` {
			t.Errorf("Body = %q", upstream.Body)
		}
	})

	t.Run("MessageFallback", func(t *testing.T) {
		src := &googleapi.Error{Code: 500, Message: "backend error"}
		err := wrapUpstream("videos", src)

		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("expected UpstreamError, got %T", err)
		}
		if upstream.Body != "backend error" {
			t.Errorf("Body = %q, want message fallback", upstream.Body)
		}
	})

	t.Run("TransportError", func(t *testing.T) {
		err := wrapUpstream("search", errors.New("connection refused"))

		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			t.Error("transport error must not become an UpstreamError")
		}
		if err == nil {
			t.Error("error swallowed")
		}
	})
}
