package faqrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
)

// PostgresRepository implements chatbot.FAQRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Migrate creates the faqs table when it does not exist yet.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS faqs (
			id BIGSERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			keywords TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// EnsureSeeded inserts the records inside one transaction, and only when the
// table is empty. Re-running it never duplicates seed data.
func (r *PostgresRepository) EnsureSeeded(ctx context.Context, records []chatbot.FAQRecord) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM faqs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return tx.Commit(ctx)
	}

	for _, record := range records {
		if _, err := tx.Exec(ctx, `
			INSERT INTO faqs (category, question, answer, keywords)
			VALUES ($1, $2, $3, $4)
		`, record.Category, record.Question, record.Answer, record.Keywords); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// ListAll returns every record in insertion order.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]chatbot.FAQRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, category, question, answer, keywords, created_at
		FROM faqs
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []chatbot.FAQRecord
	for rows.Next() {
		var record chatbot.FAQRecord
		if err := rows.Scan(&record.ID, &record.Category, &record.Question, &record.Answer, &record.Keywords, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Categories returns the sorted distinct category labels.
func (r *PostgresRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM faqs ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// ByCategory returns question/answer pairs for an exact category match.
func (r *PostgresRepository) ByCategory(ctx context.Context, category string) ([]chatbot.QA, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT question, answer
		FROM faqs
		WHERE category = $1
		ORDER BY id
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []chatbot.QA
	for rows.Next() {
		var qa chatbot.QA
		if err := rows.Scan(&qa.Question, &qa.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, qa)
	}
	return faqs, rows.Err()
}

var _ chatbot.FAQRepository = (*PostgresRepository)(nil)
