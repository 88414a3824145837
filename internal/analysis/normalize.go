package analysis

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"idea-scout/internal/models"
)

// DurationCategories lists the five duration buckets in canonical order.
// The gap analyzer's selection scan is order-sensitive, so this order must
// not change.
var DurationCategories = []string{"Shorts", "Short", "Medium", "Long", "Very Long"}

// Parse ISO 8601 duration format (e.g., "PT1M30S", "PT45S", "PT2H15M30S")
var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDurationSeconds converts an ISO 8601 duration string to seconds.
// Missing components default to 0; a non-matching string yields 0 rather
// than an error so a single malformed record never fails the request.
func ParseDurationSeconds(duration string) int {
	if duration == "" {
		return 0
	}

	matches := durationPattern.FindStringSubmatch(duration)
	if len(matches) == 0 {
		return 0
	}

	var totalSeconds int

	if matches[1] != "" {
		if hours, err := strconv.Atoi(matches[1]); err == nil {
			totalSeconds += hours * 3600
		}
	}

	if matches[2] != "" {
		if minutes, err := strconv.Atoi(matches[2]); err == nil {
			totalSeconds += minutes * 60
		}
	}

	if matches[3] != "" {
		if seconds, err := strconv.Atoi(matches[3]); err == nil {
			totalSeconds += seconds
		}
	}

	return totalSeconds
}

// CategorizeDuration maps a duration in seconds onto one of the five fixed
// categories. Boundaries are left-inclusive, so every non-negative duration
// lands in exactly one category.
func CategorizeDuration(seconds int) string {
	switch {
	case seconds < 60:
		return "Shorts"
	case seconds < 300:
		return "Short"
	case seconds < 600:
		return "Medium"
	case seconds < 1200:
		return "Long"
	default:
		return "Very Long"
	}
}

// DaysSincePublish returns whole days elapsed since publish, floored at 1.
// The floor prevents division by zero and keeps same-day uploads from
// producing an artificially explosive velocity.
func DaysSincePublish(publishedAt, now time.Time) int64 {
	days := int64(math.Floor(now.Sub(publishedAt).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Normalize turns raw retrieval records into analyzed VideoRecords with the
// derived duration category and view velocity. ZScore and IsOutlier are left
// zero until the outlier detector runs.
func Normalize(raw []models.RawVideo, now time.Time) []*models.VideoRecord {
	records := make([]*models.VideoRecord, 0, len(raw))

	for _, rv := range raw {
		seconds := ParseDurationSeconds(rv.Duration)
		days := DaysSincePublish(rv.PublishedAt, now)
		velocity := int64(math.Round(float64(rv.ViewCount) / float64(days)))

		records = append(records, &models.VideoRecord{
			ID:               rv.ID,
			Title:            rv.Title,
			ChannelID:        rv.ChannelID,
			ChannelTitle:     rv.ChannelTitle,
			PublishedAt:      rv.PublishedAt,
			ViewCount:        rv.ViewCount,
			Thumbnail:        rv.Thumbnail,
			DurationSeconds:  seconds,
			DurationCategory: CategorizeDuration(seconds),
			Velocity:         velocity,
		})
	}

	return records
}
