package analysis

import (
	"math"
	"time"

	"idea-scout/internal/models"
)

// fetchCap is the retrieval cap; a full result page saturates the
// competition factor.
const fetchCap = 50

// ScoreSaturation rates how crowded the idea's competitive landscape is,
// combining competition density, channel concentration, and mean content
// age into a 0-100 score.
func ScoreSaturation(corpus []*models.VideoRecord, now time.Time) models.SaturationAssessment {
	n := float64(len(corpus))

	channels := make(map[string]struct{})
	var ageSum float64
	for _, v := range corpus {
		channels[v.ChannelID] = struct{}{}
		ageSum += now.Sub(v.PublishedAt).Hours() / 24
	}

	competitionFactor := clamp01(n / fetchCap)
	channelConcentration := clamp01(1 - float64(len(channels))/n)
	ageFactor := clamp01(ageSum / n / 365)

	score := int(math.Round(100 * (0.4*competitionFactor + 0.3*channelConcentration + 0.3*ageFactor)))

	var label string
	switch {
	case score <= 30:
		label = "Low"
	case score <= 60:
		label = "Medium"
	default:
		label = "High"
	}

	return models.SaturationAssessment{
		Score:                   score,
		Label:                   label,
		CompetitionPct:          int(math.Round(100 * competitionFactor)),
		ChannelConcentrationPct: int(math.Round(100 * channelConcentration)),
		AgePct:                  int(math.Round(100 * ageFactor)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
