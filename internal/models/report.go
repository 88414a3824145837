package models

// RecommendedBucket is the single duration niche chosen by the gap analyzer.
// IsGap marks a category that was both under-supplied and at-or-above-average
// in demand when it was selected.
type RecommendedBucket struct {
	Category     string  `json:"category"`
	Multiplier   float64 `json:"multiplier"`
	AverageViews int64   `json:"average_views"`
	IsGap        bool    `json:"is_gap"`
}

// RecommendedLength is the response view of the chosen bucket with a
// human-readable rationale.
type RecommendedLength struct {
	Category     string  `json:"category"`
	Multiplier   float64 `json:"multiplier"`
	AverageViews int64   `json:"average_views"`
	Reason       string  `json:"reason"`
}

// PatternInsights summarizes title packaging over the analysis set, plus the
// saturated 3-word prefixes mined from the full corpus.
type PatternInsights struct {
	NumbersPct        int      `json:"numbers_pct"`
	QuestionsPct      int      `json:"questions_pct"`
	EmojiPct          int      `json:"emoji_pct"`
	AllCapsPct        int      `json:"all_caps_pct"`
	AvgTitleLength    int      `json:"avg_title_length"`
	TopWords          []string `json:"top_words"`
	SaturatedPatterns []string `json:"saturated_patterns"`
}

type SaturationAssessment struct {
	Score                   int    `json:"score"` // 0-100
	Label                   string `json:"label"` // Low / Medium / High
	CompetitionPct          int    `json:"competition_pct"`
	ChannelConcentrationPct int    `json:"channel_concentration_pct"`
	AgePct                  int    `json:"age_pct"`
}

type ConfidenceAssessment struct {
	Score   int      `json:"score"` // clamped to [20, 95]
	Level   string   `json:"level"` // Low / Medium / High
	Factors []string `json:"factors"`
}

// TitleSuggestion is one title candidate, either generated by the AI
// collaborator or synthesized from the fallback templates.
type TitleSuggestion struct {
	Title     string `json:"title"`
	Reasoning string `json:"reasoning"`
}

// Statistics is the numeric summary block of the analysis response.
type Statistics struct {
	OutlierCount   int                  `json:"outlier_count"`
	OutlierRate    int                  `json:"outlier_rate"` // percent of corpus
	AvgVelocity    int64                `json:"avg_velocity"`
	VelocityStdDev float64              `json:"velocity_std_dev"`
	SampleSize     int                  `json:"sample_size"`
	Confidence     ConfidenceAssessment `json:"confidence"`
}

// AnalysisReport is the full success payload for one analyzed idea.
type AnalysisReport struct {
	Idea              string               `json:"idea"`
	RecommendedLength RecommendedLength    `json:"recommended_length"`
	TitleSuggestions  []TitleSuggestion    `json:"title_suggestions"`
	Patterns          PatternInsights      `json:"patterns"`
	TopOutliers       []*VideoRecord       `json:"top_outliers"`
	Saturation        SaturationAssessment `json:"saturation"`
	Stats             Statistics           `json:"stats"`
	TotalAnalyzed     int                  `json:"total_analyzed"`
}

// TopicOpportunity scores one scanned sub-topic for the opportunity scanner.
type TopicOpportunity struct {
	Topic            string `json:"topic"`
	Demand           int64  `json:"demand"` // mean velocity of the topic corpus
	Supply           int    `json:"supply"` // number of competing videos found
	SaturationScore  int    `json:"saturation_score"`
	OpportunityScore int    `json:"opportunity_score"`
	Grade            string `json:"grade"`
}

type ScanReport struct {
	Idea   string             `json:"idea"`
	Topics []TopicOpportunity `json:"topics"`
}
