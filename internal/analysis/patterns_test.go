package analysis

import (
	"fmt"
	"reflect"
	"testing"

	"idea-scout/internal/models"
)

func titleCorpus(titles ...string) []*models.VideoRecord {
	corpus := make([]*models.VideoRecord, len(titles))
	for i, title := range titles {
		corpus[i] = &models.VideoRecord{ID: fmt.Sprintf("v%d", i), Title: title}
	}
	return corpus
}

func TestMinePatternsSignals(t *testing.T) {
	set := titleCorpus(
		"Top 10 Python Tips",
		"Why ROI Matters?",
		"\U0001F525 crazy results",
		"plain title here",
	)

	insights := MinePatterns(set, set)

	if insights.NumbersPct != 25 {
		t.Errorf("NumbersPct = %d, want 25", insights.NumbersPct)
	}
	if insights.QuestionsPct != 25 {
		t.Errorf("QuestionsPct = %d, want 25", insights.QuestionsPct)
	}
	if insights.EmojiPct != 25 {
		t.Errorf("EmojiPct = %d, want 25", insights.EmojiPct)
	}
	if insights.AllCapsPct != 25 {
		t.Errorf("AllCapsPct = %d, want 25", insights.AllCapsPct)
	}
	if insights.AvgTitleLength != 16 {
		t.Errorf("AvgTitleLength = %d, want 16", insights.AvgTitleLength)
	}
}

func TestTitleSignalPredicates(t *testing.T) {
	tests := []struct {
		title    string
		number   bool
		question bool
		emoji    bool
		caps     bool
	}{
		{"plain words only", false, false, false, false},
		{"7 Habits", true, false, false, false},
		{"Is this real?", false, true, false, false},
		{"watch this \U0001F60E", false, false, true, false},
		{"❤ from the heart", false, false, true, false},
		{"NEW update", false, false, false, true},
		{"McDonald's Ad", false, false, false, false}, // only two consecutive capitals
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := titleHasNumber(tt.title); got != tt.number {
				t.Errorf("titleHasNumber = %v, want %v", got, tt.number)
			}
			if got := titleHasQuestion(tt.title); got != tt.question {
				t.Errorf("titleHasQuestion = %v, want %v", got, tt.question)
			}
			if got := titleHasEmoji(tt.title); got != tt.emoji {
				t.Errorf("titleHasEmoji = %v, want %v", got, tt.emoji)
			}
			if got := titleHasCapsRun(tt.title); got != tt.caps {
				t.Errorf("titleHasCapsRun = %v, want %v", got, tt.caps)
			}
		})
	}
}

func TestTopWordsInsertionOrderTieBreak(t *testing.T) {
	set := titleCorpus(
		"alpha beta gamma",
		"beta alpha",
		"gamma delta the and",
	)

	insights := MinePatterns(set, set)

	// alpha and beta tie at 2, gamma at 2, delta at 1; ties keep
	// first-encountered order. Tokens of 3 characters or fewer are dropped.
	want := []string{"alpha", "beta", "gamma", "delta"}
	if !reflect.DeepEqual(insights.TopWords, want) {
		t.Errorf("TopWords = %v, want %v", insights.TopWords, want)
	}
}

func TestTopWordsCappedAtSix(t *testing.T) {
	set := titleCorpus("first second third fourth fifth sixth seventh eighth")

	insights := MinePatterns(set, set)
	if len(insights.TopWords) != 6 {
		t.Errorf("TopWords has %d entries, want 6", len(insights.TopWords))
	}
}

func TestSaturatedPatternsDiscoveryOrder(t *testing.T) {
	words := []string{"one", "two", "three", "four", "five", "six", "seven"}

	// Seven distinct prefixes, three videos each, interleaved so discovery
	// order differs from alphabetical order.
	var titles []string
	for round := 0; round < 3; round++ {
		for _, w := range words {
			titles = append(titles, fmt.Sprintf("How To %s episode %d", w, round))
		}
	}
	// A prefix seen only twice must not be reported.
	titles = append(titles, "Rare Prefix Here a", "Rare Prefix Here b")

	corpus := titleCorpus(titles...)
	insights := MinePatterns(corpus[:5], corpus)

	want := make([]string, len(words))
	for i, w := range words {
		want[i] = "how to " + w
	}
	if !reflect.DeepEqual(insights.SaturatedPatterns, want) {
		t.Errorf("SaturatedPatterns = %v, want %v", insights.SaturatedPatterns, want)
	}
}

func TestMinePatternsEmptyAnalysisSet(t *testing.T) {
	corpus := titleCorpus("some title words")
	insights := MinePatterns(nil, corpus)

	if insights.NumbersPct != 0 || insights.AvgTitleLength != 0 {
		t.Error("empty analysis set should produce zero signal values")
	}
	if len(insights.TopWords) != 0 {
		t.Errorf("TopWords = %v, want empty", insights.TopWords)
	}
}
