package models

import "time"

// Sentiment is the pre-assigned tone label carried by a signal record.
// The core never infers sentiment from text; labels arrive with the data.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// SignalRecord is one raw observation about a topic: a news or report
// snippet already reduced to its analytical fields by the acquisition
// collaborator. Records are owned by the caller for the duration of one
// classification call and are not retained by the core afterward.
type SignalRecord struct {
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	Date        time.Time `json:"date"`
	Keywords    []string  `json:"keywords,omitempty"`
	Sentiment   Sentiment `json:"sentiment"`
	ImpactScore float64   `json:"impact_score"` // [0,1]
}

// SentimentObservation is one labeled sentiment reading for a trend,
// typically one per monitored source.
type SentimentObservation struct {
	Source string    `json:"source"`
	Label  Sentiment `json:"label"`
	Score  float64   `json:"score"` // [0,1]
	Date   time.Time `json:"date"`
}

// GrowthPoint is one step of a trend's recorded growth history.
// Series are ordered most recent first.
type GrowthPoint struct {
	Date       time.Time `json:"date"`
	GrowthRate float64   `json:"growth_rate"`
}
