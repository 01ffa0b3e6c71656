package model

// SentimentLabel is the discrete polarity classification of a text.
type SentimentLabel string

// Sentiment label constants.
const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
	// SentimentUnknown means no analyzer was configured.
	SentimentUnknown SentimentLabel = "unknown"
	// SentimentError means the analyzer was configured but the call failed.
	SentimentError SentimentLabel = "error"
)

// Sentiment score thresholds for converting a polarity score to a label.
const (
	positiveThreshold = 0.25
	negativeThreshold = -0.25
)

// Sentiment is the result of a polarity analysis.
type Sentiment struct {
	Label     SentimentLabel
	Score     float64
	Magnitude float64
}

// LabelForScore converts a continuous polarity score to a discrete label.
func LabelForScore(score float64) SentimentLabel {
	switch {
	case score > positiveThreshold:
		return SentimentPositive
	case score < negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
