package models

import "time"

// RawVideo is the per-video metadata handed over by the corpus retrieval
// collaborator, before any derivation.
type RawVideo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ChannelID    string    `json:"channel_id"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	Thumbnail    string    `json:"thumbnail"`
	Duration     string    `json:"duration"` // ISO 8601, e.g. "PT1M30S"
}

// VideoRecord is one normalized, analyzed video. Velocity and the duration
// category are derived at normalization time; ZScore and IsOutlier are filled
// in by the outlier detector and are only meaningful within the corpus they
// were computed against.
type VideoRecord struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ChannelID        string    `json:"channel_id"`
	ChannelTitle     string    `json:"channel_title"`
	PublishedAt      time.Time `json:"published_at"`
	ViewCount        int64     `json:"view_count"`
	Thumbnail        string    `json:"thumbnail"`
	DurationSeconds  int       `json:"duration_seconds"`
	DurationCategory string    `json:"duration_category"`
	Velocity         int64     `json:"velocity"` // views per day since publish
	ZScore           float64   `json:"z_score"`
	IsOutlier        bool      `json:"is_outlier"`
}
