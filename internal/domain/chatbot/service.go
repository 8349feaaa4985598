package chatbot

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/campusdesk/college-helpdesk/pkg/errors"
)

// GeneralCategory labels replies that did not come from a specific record.
const GeneralCategory = "General"

// EmptyQueryPrompt is returned for blank input. Distinct from the fallback.
const EmptyQueryPrompt = "Please ask me a question about the college!"

// noInformationAnswer is the initial best answer before any record wins.
const noInformationAnswer = "I'm sorry, I don't have information about that. Please contact the college helpdesk at help@college.edu or call (555) 123-4567 for assistance."

// FallbackAnswer replaces the matched answer when confidence stays below the
// threshold.
const FallbackAnswer = "I couldn't find a specific answer to your question. Here are some ways to get help:\n\n" +
	"📞 Call: (555) 123-4567\n" +
	"📧 Email: help@college.edu\n" +
	"🏢 Visit: Student Services Center\n" +
	"🌐 Website: www.college.edu/help\n\n" +
	"You can also try rephrasing your question or ask about: admissions, academics, financial aid, campus life, or technical support."

// Service exposes the helpdesk core to the web handler and bot adapters.
type Service interface {
	// Answer runs one matching pass over the current FAQ snapshot.
	Answer(ctx context.Context, query string) (Reply, error)
	// LogConversation appends one (query, response, confidence) turn.
	LogConversation(ctx context.Context, query, response string, confidence float64) error
	Categories(ctx context.Context) ([]string, error)
	FAQsByCategory(ctx context.Context, category string) ([]QA, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	cfg    Config
	repo   FAQRepository
	log    ConversationLog
	logger *slog.Logger
}

// NewService wires up the helpdesk domain.
func NewService(cfg Config, repo FAQRepository, log ConversationLog, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		log:    log,
		logger: logger.With("component", "chatbot.service"),
	}
}

func (s *service) Answer(ctx context.Context, query string) (Reply, error) {
	if strings.TrimSpace(query) == "" {
		return Reply{
			Answer:     EmptyQueryPrompt,
			Confidence: 0.0,
			Category:   GeneralCategory,
		}, nil
	}

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return Reply{}, apperrors.Wrap("storage_error", "faq lookup failed", err)
	}

	bestScore := 0.0
	bestAnswer := noInformationAnswer
	bestCategory := GeneralCategory

	for _, record := range records {
		// strictly greater keeps the first-seen maximum on ties
		score := Score(s.cfg, query, record.Question, record.Keywords)
		if score > bestScore {
			bestScore = score
			bestAnswer = record.Answer
			bestCategory = record.Category
		}
	}

	if bestScore < s.cfg.ConfidenceThreshold {
		bestAnswer = FallbackAnswer
		bestCategory = GeneralCategory
	}

	return Reply{
		Answer:     bestAnswer,
		Confidence: bestScore,
		Category:   bestCategory,
	}, nil
}

func (s *service) LogConversation(ctx context.Context, query, response string, confidence float64) error {
	if err := s.log.Append(ctx, query, response, confidence); err != nil {
		return apperrors.Wrap("storage_error", "conversation log append failed", err)
	}
	return nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "category listing failed", err)
	}
	return categories, nil
}

func (s *service) FAQsByCategory(ctx context.Context, category string) ([]QA, error) {
	faqs, err := s.repo.ByCategory(ctx, category)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "category lookup failed", err)
	}
	return faqs, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.log.Stats(ctx, s.cfg.TopQueries)
	if err != nil {
		return Stats{}, apperrors.Wrap("storage_error", "stats aggregation failed", err)
	}
	return stats, nil
}
