package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"idea-scout/internal/models"
)

var (
	digitPattern = regexp.MustCompile(`[0-9]`)
	// Common emoji blocks: symbols/pictographs plus the legacy dingbat and
	// misc-symbol ranges.
	emojiPattern   = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}]`)
	allCapsPattern = regexp.MustCompile(`[A-Z]{3,}`)
)

func titleHasNumber(title string) bool {
	return digitPattern.MatchString(title)
}

func titleHasQuestion(title string) bool {
	return strings.Contains(title, "?")
}

func titleHasEmoji(title string) bool {
	return emojiPattern.MatchString(title)
}

func titleHasCapsRun(title string) bool {
	return allCapsPattern.MatchString(title)
}

// MinePatterns extracts title-packaging signals from the analysis set and
// saturated 3-word title prefixes from the full corpus. The saturated list
// is returned in discovery order and uncapped; the report assembler applies
// the display limit.
func MinePatterns(analysisSet, corpus []*models.VideoRecord) models.PatternInsights {
	insights := models.PatternInsights{
		TopWords:          []string{},
		SaturatedPatterns: []string{},
	}

	if len(analysisSet) > 0 {
		var numbers, questions, emoji, caps, lengthSum int
		for _, v := range analysisSet {
			if titleHasNumber(v.Title) {
				numbers++
			}
			if titleHasQuestion(v.Title) {
				questions++
			}
			if titleHasEmoji(v.Title) {
				emoji++
			}
			if titleHasCapsRun(v.Title) {
				caps++
			}
			lengthSum += utf8.RuneCountInString(v.Title)
		}

		n := len(analysisSet)
		insights.NumbersPct = percentOf(numbers, n)
		insights.QuestionsPct = percentOf(questions, n)
		insights.EmojiPct = percentOf(emoji, n)
		insights.AllCapsPct = percentOf(caps, n)
		insights.AvgTitleLength = int(math.Round(float64(lengthSum) / float64(n)))
		insights.TopWords = topWords(analysisSet, 6)
	}

	insights.SaturatedPatterns = saturatedPatterns(corpus)
	return insights
}

func percentOf(count, total int) int {
	return int(math.Round(100 * float64(count) / float64(total)))
}

// topWords counts word frequency over the analysis-set titles, lowercased
// and split on whitespace, discarding tokens of 3 characters or fewer.
// Ties break by first-encountered order, not alphabetically.
func topWords(analysisSet []*models.VideoRecord, limit int) []string {
	counts := make(map[string]int)
	var order []string

	for _, v := range analysisSet {
		for _, token := range strings.Fields(strings.ToLower(v.Title)) {
			if utf8.RuneCountInString(token) <= 3 {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// saturatedPatterns keys every corpus title by its lowercased first three
// whitespace-delimited tokens and reports every key shared by 3 or more
// videos, in the order each key was first seen.
func saturatedPatterns(corpus []*models.VideoRecord) []string {
	counts := make(map[string]int)
	var order []string

	for _, v := range corpus {
		tokens := strings.Fields(strings.ToLower(v.Title))
		if len(tokens) > 3 {
			tokens = tokens[:3]
		}
		key := strings.Join(tokens, " ")
		if key == "" {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	saturated := []string{}
	for _, key := range order {
		if counts[key] >= 3 {
			saturated = append(saturated, key)
		}
	}
	return saturated
}
