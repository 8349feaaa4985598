package chatlog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
)

// PostgresLog implements chatbot.ConversationLog using pgx.
type PostgresLog struct {
	pool *pgxpool.Pool
}

// NewPostgresLog constructs the log.
func NewPostgresLog(pool *pgxpool.Pool) *PostgresLog {
	return &PostgresLog{pool: pool}
}

// Migrate creates the chat_logs table when it does not exist yet.
func (l *PostgresLog) Migrate(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_logs (
			id BIGSERIAL PRIMARY KEY,
			user_query TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			confidence_score DOUBLE PRECISION NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// Append records one turn. The timestamp is assigned by the database.
func (l *PostgresLog) Append(ctx context.Context, userQuery, botResponse string, confidence float64) error {
	_, err := l.pool.Exec(ctx, `
		INSERT INTO chat_logs (user_query, bot_response, confidence_score)
		VALUES ($1, $2, $3)
	`, userQuery, botResponse, confidence)
	return err
}

// Stats aggregates the log in two queries: totals and the grouped top list.
func (l *PostgresLog) Stats(ctx context.Context, topLimit int) (chatbot.Stats, error) {
	var stats chatbot.Stats
	if err := l.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(confidence_score), 0)
		FROM chat_logs
	`).Scan(&stats.TotalConversations, &stats.AverageConfidence); err != nil {
		return chatbot.Stats{}, err
	}

	if topLimit <= 0 {
		topLimit = 5
	}
	rows, err := l.pool.Query(ctx, `
		SELECT user_query, COUNT(*) AS hits
		FROM chat_logs
		GROUP BY user_query
		ORDER BY hits DESC, user_query ASC
		LIMIT $1
	`, topLimit)
	if err != nil {
		return chatbot.Stats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var query chatbot.CommonQuery
		if err := rows.Scan(&query.Query, &query.Count); err != nil {
			return chatbot.Stats{}, err
		}
		stats.CommonQueries = append(stats.CommonQueries, query)
	}
	return stats, rows.Err()
}

var _ chatbot.ConversationLog = (*PostgresLog)(nil)
