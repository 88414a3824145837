package analysis

import (
	"math"

	"idea-scout/internal/models"
)

// AnalyzeDurationGaps aggregates the corpus by duration category and selects
// a single recommended length niche.
//
// The scan walks the categories in canonical order with a best-so-far
// accumulator. A category that is simultaneously under-supplied and
// at-or-above-average in demand becomes a "gap" candidate; once a gap
// candidate is locked in, a non-gap category can never displace it, even
// with a higher raw multiplier. Gap status is sticky by design.
func AnalyzeDurationGaps(corpus []*models.VideoRecord) models.RecommendedBucket {
	counts := make(map[string]int)
	views := make(map[string]int64)

	var totalViews int64
	for _, v := range corpus {
		counts[v.DurationCategory]++
		views[v.DurationCategory] += v.ViewCount
		totalViews += v.ViewCount
	}

	corpusAverage := float64(totalViews) / float64(len(corpus))
	averageCountPerCategory := float64(len(corpus)) / float64(len(DurationCategories))

	var best models.RecommendedBucket
	var bestMultiplier float64

	for _, category := range DurationCategories {
		count := counts[category]
		if count == 0 {
			continue
		}

		categoryAverage := math.Round(float64(views[category]) / float64(count))

		var multiplier float64
		if corpusAverage > 0 {
			multiplier = categoryAverage / corpusAverage
		}

		isUnderserved := float64(count) < 0.7*averageCountPerCategory
		hasDemand := categoryAverage >= 0.8*corpusAverage

		if isUnderserved && hasDemand {
			if multiplier > bestMultiplier {
				best = models.RecommendedBucket{
					Category:     category,
					AverageViews: int64(categoryAverage),
					IsGap:        true,
				}
				bestMultiplier = multiplier
			}
		} else if !best.IsGap && multiplier > bestMultiplier {
			best = models.RecommendedBucket{
				Category:     category,
				AverageViews: int64(categoryAverage),
			}
			bestMultiplier = multiplier
		}
	}

	best.Multiplier = math.Round(bestMultiplier*10) / 10
	return best
}
