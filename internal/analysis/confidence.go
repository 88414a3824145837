package analysis

import "idea-scout/internal/models"

// ScoreConfidence rates how much weight to put on the derived
// recommendations, given sample size, outlier count, and pattern clarity.
// The score starts at 50, each factor adjusts it, and the result is clamped
// to [20, 95]. Factors that fired are reported in order: sample size, then
// outliers, then pattern clarity.
func ScoreConfidence(sampleSize, outlierCount int, insights models.PatternInsights) models.ConfidenceAssessment {
	score := 50
	var factors []string

	switch {
	case sampleSize >= 40:
		score += 15
		factors = append(factors, "Strong sample size (40+ videos)")
	case sampleSize >= 25:
		score += 10
		factors = append(factors, "Good sample size (25+ videos)")
	default:
		score -= 10
		factors = append(factors, "Limited sample size")
	}

	switch {
	case outlierCount >= 5:
		score += 15
		factors = append(factors, "Clear outlier pattern (5+ outliers)")
	case outlierCount >= 2:
		score += 8
		factors = append(factors, "Some outliers found")
	default:
		score -= 5
		factors = append(factors, "Few statistical outliers")
	}

	maxPattern := insights.NumbersPct
	if insights.QuestionsPct > maxPattern {
		maxPattern = insights.QuestionsPct
	}
	if insights.AllCapsPct > maxPattern {
		maxPattern = insights.AllCapsPct
	}

	switch {
	case maxPattern >= 60:
		score += 10
		factors = append(factors, "Clear title pattern dominance")
	case maxPattern >= 40:
		score += 5
		factors = append(factors, "Moderate pattern clarity")
	}

	if score < 20 {
		score = 20
	} else if score > 95 {
		score = 95
	}

	var level string
	switch {
	case score >= 75:
		level = "High"
	case score >= 50:
		level = "Medium"
	default:
		level = "Low"
	}

	return models.ConfidenceAssessment{
		Score:   score,
		Level:   level,
		Factors: factors,
	}
}
