package models

// SentimentVerdict reduces per-source sentiment labels for one trend into
// an overall verdict. Distribution keys are the Sentiment vocabulary.
type SentimentVerdict struct {
	TrendName        string            `json:"trend_name"`
	OverallSentiment Sentiment         `json:"overall_sentiment"`
	SentimentScore   float64           `json:"sentiment_score"` // net, [-1,1]
	TrendDirection   string            `json:"trend_direction"` // "improving" | "declining"
	Distribution     map[Sentiment]int `json:"distribution"`
	SourcesAnalyzed  int               `json:"sources_analyzed"`
	SentimentDrivers []string          `json:"sentiment_drivers"`
	Insights         []string          `json:"insights"`
}
