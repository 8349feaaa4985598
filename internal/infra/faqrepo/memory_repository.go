package faqrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
	"github.com/campusdesk/college-helpdesk/pkg/util"
)

// MemoryRepository is an in-memory FAQRepository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records []chatbot.FAQRecord
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// EnsureSeeded implements chatbot.FAQRepository.
func (r *MemoryRepository) EnsureSeeded(_ context.Context, records []chatbot.FAQRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) > 0 {
		return nil
	}
	now := util.NowUTC()
	for _, record := range records {
		record.ID = r.nextID
		record.CreatedAt = now
		record.Keywords = append([]string(nil), record.Keywords...)
		r.nextID++
		r.records = append(r.records, record)
	}
	return nil
}

// ListAll implements chatbot.FAQRepository.
func (r *MemoryRepository) ListAll(context.Context) ([]chatbot.FAQRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]chatbot.FAQRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Categories implements chatbot.FAQRepository.
func (r *MemoryRepository) Categories(context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool, len(r.records))
	var categories []string
	for _, record := range r.records {
		if !seen[record.Category] {
			seen[record.Category] = true
			categories = append(categories, record.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// ByCategory implements chatbot.FAQRepository.
func (r *MemoryRepository) ByCategory(_ context.Context, category string) ([]chatbot.QA, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var faqs []chatbot.QA
	for _, record := range r.records {
		if record.Category == category {
			faqs = append(faqs, chatbot.QA{Question: record.Question, Answer: record.Answer})
		}
	}
	return faqs, nil
}

var _ chatbot.FAQRepository = (*MemoryRepository)(nil)
