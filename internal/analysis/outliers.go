package analysis

import (
	"math"
	"sort"

	"idea-scout/internal/models"
)

// Outliers is the corpus-wide velocity statistics plus the ranked views the
// downstream stages consume. Ranked is sorted by z-score descending with
// original corpus order preserved on ties, so results are reproducible.
type Outliers struct {
	Mean    float64
	StdDev  float64
	Ranked  []*models.VideoRecord
	Top     []*models.VideoRecord // first 5 of Ranked, whether or not flagged
	Flagged int                   // count of records with z-score > 2
}

// DetectOutliers computes the population mean and standard deviation of
// velocity, stamps each record with its z-score and outlier flag, and builds
// the ranked views. The caller guarantees a non-empty corpus.
//
// Population (not sample) standard deviation is deliberate: the corpus is
// fully enumerated, not a sample of a larger population.
func DetectOutliers(corpus []*models.VideoRecord) Outliers {
	n := float64(len(corpus))

	var sum float64
	for _, v := range corpus {
		sum += float64(v.Velocity)
	}
	mean := sum / n

	var sqDiff float64
	for _, v := range corpus {
		d := float64(v.Velocity) - mean
		sqDiff += d * d
	}
	stdDev := math.Sqrt(sqDiff / n)

	flagged := 0
	for _, v := range corpus {
		if stdDev == 0 {
			// Degenerate corpus: all velocities equal, or a single video.
			v.ZScore = 0
		} else {
			v.ZScore = math.Round((float64(v.Velocity)-mean)/stdDev*100) / 100
		}
		v.IsOutlier = v.ZScore > 2
		if v.IsOutlier {
			flagged++
		}
	}

	ranked := make([]*models.VideoRecord, len(corpus))
	copy(ranked, corpus)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ZScore > ranked[j].ZScore
	})

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}

	return Outliers{
		Mean:    mean,
		StdDev:  stdDev,
		Ranked:  ranked,
		Top:     top,
		Flagged: flagged,
	}
}

// AnalysisSet is the subset of the corpus used for title-pattern mining:
// the top ranked records when at least 3 are available, otherwise whatever
// the ranked view holds.
func (o Outliers) AnalysisSet() []*models.VideoRecord {
	if len(o.Top) >= 3 {
		return o.Top
	}
	if len(o.Ranked) > 5 {
		return o.Ranked[:5]
	}
	return o.Ranked
}
