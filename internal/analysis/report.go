package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"idea-scout/internal/models"
)

// TitleGenerator is the external generative-text collaborator. Any error it
// returns is recovered locally with the deterministic fallback; title
// generation never fails a request.
type TitleGenerator interface {
	GenerateTitles(ctx context.Context, brief string) ([]models.TitleSuggestion, error)
}

const (
	maxSaturatedShown = 5
	maxOutliersShown  = 3
)

// Strategic directives keyed by saturation label.
var directives = map[string]string{
	"Low":    "Competition is light. Lead with broad, beginner-friendly framing to capture the unclaimed demand.",
	"Medium": "Competition is moderate. Differentiate with a specific angle or a credibility hook rather than a generic take.",
	"High":   "Competition is heavy. Target a narrow sub-angle and counter-position against the dominant titles.",
}

// BuildReport runs the full scoring pipeline over a normalized, non-empty
// corpus and assembles the response payload. The caller supplies a frozen
// now so every age-derived value in one request is computed against the
// same instant.
func BuildReport(ctx context.Context, idea string, corpus []*models.VideoRecord, gen TitleGenerator, now time.Time) *models.AnalysisReport {
	out := DetectOutliers(corpus)
	bucket := AnalyzeDurationGaps(corpus)
	insights := MinePatterns(out.AnalysisSet(), corpus)
	saturation := ScoreSaturation(corpus, now)
	confidence := ScoreConfidence(len(corpus), out.Flagged, insights)

	titles := generateTitles(ctx, idea, gen, out, insights, saturation)

	shownPatterns := insights.SaturatedPatterns
	if len(shownPatterns) > maxSaturatedShown {
		shownPatterns = shownPatterns[:maxSaturatedShown]
	}
	insights.SaturatedPatterns = shownPatterns

	topOutliers := out.Top
	if len(topOutliers) > maxOutliersShown {
		topOutliers = topOutliers[:maxOutliersShown]
	}

	outlierRate := int(math.Round(100 * float64(out.Flagged) / float64(len(corpus))))

	return &models.AnalysisReport{
		Idea:              idea,
		RecommendedLength: describeBucket(bucket),
		TitleSuggestions:  titles,
		Patterns:          insights,
		TopOutliers:       topOutliers,
		Saturation:        saturation,
		Stats: models.Statistics{
			OutlierCount:   out.Flagged,
			OutlierRate:    outlierRate,
			AvgVelocity:    int64(math.Round(out.Mean)),
			VelocityStdDev: math.Round(out.StdDev*10) / 10,
			SampleSize:     len(corpus),
			Confidence:     confidence,
		},
		TotalAnalyzed: len(corpus),
	}
}

func describeBucket(b models.RecommendedBucket) models.RecommendedLength {
	var reason string
	switch {
	case b.Category == "":
		reason = "No duration niche stands out for this idea."
	case b.IsGap:
		reason = fmt.Sprintf("%s videos are under-supplied here yet average %.1fx the typical views for this idea.", b.Category, b.Multiplier)
	default:
		reason = fmt.Sprintf("%s videos lead this niche at %.1fx the average views.", b.Category, b.Multiplier)
	}

	return models.RecommendedLength{
		Category:     b.Category,
		Multiplier:   b.Multiplier,
		AverageViews: b.AverageViews,
		Reason:       reason,
	}
}

func generateTitles(ctx context.Context, idea string, gen TitleGenerator, out Outliers, insights models.PatternInsights, saturation models.SaturationAssessment) []models.TitleSuggestion {
	if gen != nil {
		brief := buildBrief(idea, out, insights, saturation)
		titles, err := gen.GenerateTitles(ctx, brief)
		if err == nil && len(titles) > 0 {
			return titles
		}
		if err != nil {
			log.Warn().Err(err).Msgf("Title generation failed for %q, using fallback titles", idea)
		}
	}
	return fallbackTitles(idea)
}

// buildBrief summarizes the analysis into a natural-language prompt for the
// title generator: outlier titles with their multiple of average views,
// saturated prefixes to avoid, packaging percentages, and the
// saturation-tier directive.
func buildBrief(idea string, out Outliers, insights models.PatternInsights, saturation models.SaturationAssessment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Video idea: %s\n\n", idea)

	b.WriteString("Top performing competitor titles:\n")
	for _, v := range out.Top {
		multiple := 1.0
		if out.Mean > 0 {
			multiple = float64(v.Velocity) / out.Mean
		}
		fmt.Fprintf(&b, "- %q (%.1fx average views)\n", v.Title, multiple)
	}

	if len(insights.SaturatedPatterns) > 0 {
		b.WriteString("\nOverused title openings to avoid:\n")
		for _, p := range insights.SaturatedPatterns {
			fmt.Fprintf(&b, "- %q\n", p)
		}
	}

	fmt.Fprintf(&b, "\nPackaging signals among winners: %d%% use numbers, %d%% ask a question, %d%% use emoji, %d%% use ALL-CAPS words. Average title length is %d characters.\n",
		insights.NumbersPct, insights.QuestionsPct, insights.EmojiPct, insights.AllCapsPct, insights.AvgTitleLength)

	fmt.Fprintf(&b, "\nStrategy: %s\n", directives[saturation.Label])

	return b.String()
}

// fallbackTitles derives three deterministic suggestions from the idea
// string when the generator is unreachable or returns garbage.
func fallbackTitles(idea string) []models.TitleSuggestion {
	const reasoning = "Template fallback (AI title generation unavailable)"
	return []models.TitleSuggestion{
		{Title: fmt.Sprintf("The Truth About %s", idea), Reasoning: reasoning},
		{Title: fmt.Sprintf("%s: A Complete Guide", idea), Reasoning: reasoning},
		{Title: fmt.Sprintf("Why Everyone Gets %s Wrong", idea), Reasoning: reasoning},
	}
}
