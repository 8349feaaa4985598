package chatbot

import "time"

// FAQRecord is one stored question/answer unit used for matching.
type FAQRecord struct {
	ID        int64
	Category  string
	Question  string
	Answer    string
	Keywords  []string
	CreatedAt time.Time
}

// QA is the question/answer pair returned by category browsing.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Reply is the outcome of one matching pass over the FAQ set.
type Reply struct {
	Answer     string  `json:"response"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// CommonQuery is a frequently logged user query.
type CommonQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

// Stats aggregates interaction log usage data.
type Stats struct {
	TotalConversations int64         `json:"total_conversations"`
	AverageConfidence  float64       `json:"average_confidence"`
	CommonQueries      []CommonQuery `json:"common_queries"`
}
