package chatbot

// Config holds the matching policy knobs.
type Config struct {
	// ConfidenceThreshold is the minimum blended score required to return a
	// matched answer instead of the generic help message.
	ConfidenceThreshold float64
	// QuestionWeight scales the sequence-similarity signal.
	QuestionWeight float64
	// KeywordWeight scales the keyword-overlap signal.
	KeywordWeight float64
	// TopQueries caps the common-query list returned by Stats.
	TopQueries int
}

// DefaultConfig returns the stock matching policy.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.3,
		QuestionWeight:      0.6,
		KeywordWeight:       0.4,
		TopQueries:          5,
	}
}
