package scanner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"idea-scout/internal/analysis"
	"idea-scout/internal/models"
	"idea-scout/shared/youtube"
)

// CorpusSource is the slice of the retrieval collaborator the scanner needs.
type CorpusSource interface {
	Search(ctx context.Context, query, region string, maxResults int64) ([]string, error)
	Videos(ctx context.Context, ids []string) ([]models.RawVideo, error)
}

// Per-topic search cap: smaller than the analyze pipeline's, since the
// scanner issues one search per sub-topic.
const topicFetchCap = 25

// Sub-topic templates expanded around the idea, scanned in this order.
var subTopicForms = []string{
	"%s for beginners",
	"%s tutorial",
	"%s mistakes",
	"%s review",
	"best %s",
}

type Scanner struct {
	corpus CorpusSource
}

func New(corpus CorpusSource) *Scanner {
	return &Scanner{corpus: corpus}
}

// Scan scores each derived sub-topic by demand, supply, and saturation,
// sequentially, and ranks the results by opportunity score. A topic whose
// search matches nothing scores zero; only upstream failures abort the scan.
func (s *Scanner) Scan(ctx context.Context, idea, region string, now time.Time) (*models.ScanReport, error) {
	topics := make([]models.TopicOpportunity, 0, len(subTopicForms))

	for _, form := range subTopicForms {
		topic := fmt.Sprintf(form, idea)

		opportunity, err := s.scanTopic(ctx, topic, region, now)
		if err != nil {
			return nil, fmt.Errorf("failed to scan topic %q: %w", topic, err)
		}
		topics = append(topics, opportunity)
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].OpportunityScore > topics[j].OpportunityScore
	})

	return &models.ScanReport{Idea: idea, Topics: topics}, nil
}

func (s *Scanner) scanTopic(ctx context.Context, topic, region string, now time.Time) (models.TopicOpportunity, error) {
	empty := models.TopicOpportunity{Topic: topic, Grade: "D"}

	ids, err := s.corpus.Search(ctx, topic, region, topicFetchCap)
	if err != nil {
		if errors.Is(err, youtube.ErrNoResults) {
			log.Debug().Msgf("No results for sub-topic %q", topic)
			return empty, nil
		}
		return empty, err
	}

	raw, err := s.corpus.Videos(ctx, ids)
	if err != nil {
		return empty, err
	}

	corpus := analysis.Normalize(raw, now)
	if len(corpus) == 0 {
		return empty, nil
	}

	var velocitySum int64
	for _, v := range corpus {
		velocitySum += v.Velocity
	}
	demand := int64(math.Round(float64(velocitySum) / float64(len(corpus))))

	saturation := analysis.ScoreSaturation(corpus, now)

	demandIndex := math.Min(float64(demand)/1000, 1) * 100
	score := int(math.Round(demandIndex * float64(100-saturation.Score) / 100))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return models.TopicOpportunity{
		Topic:            topic,
		Demand:           demand,
		Supply:           len(corpus),
		SaturationScore:  saturation.Score,
		OpportunityScore: score,
		Grade:            gradeFor(score),
	}, nil
}

func gradeFor(score int) string {
	switch {
	case score >= 75:
		return "A"
	case score >= 55:
		return "B"
	case score >= 35:
		return "C"
	default:
		return "D"
	}
}
