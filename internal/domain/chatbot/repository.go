package chatbot

import "context"

// FAQRepository is the durable store of FAQ records.
type FAQRepository interface {
	// EnsureSeeded inserts the records only when the store is empty.
	// Safe to call on every startup.
	EnsureSeeded(ctx context.Context, records []FAQRecord) error
	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]FAQRecord, error)
	// Categories returns the sorted distinct category labels.
	Categories(ctx context.Context) ([]string, error)
	// ByCategory returns the question/answer pairs whose category matches
	// exactly. No normalization is applied to the filter key.
	ByCategory(ctx context.Context, category string) ([]QA, error)
}

// ConversationLog is the append-only record of user turns.
type ConversationLog interface {
	// Append durably records one turn with a store-assigned timestamp.
	Append(ctx context.Context, userQuery, botResponse string, confidence float64) error
	// Stats aggregates the log: total count, mean confidence (0 when the
	// log is empty), and the top queries grouped by exact text.
	Stats(ctx context.Context, topLimit int) (Stats, error)
}
