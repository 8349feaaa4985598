package chatlog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
	"github.com/campusdesk/college-helpdesk/pkg/util"
)

type entry struct {
	userQuery   string
	botResponse string
	confidence  float64
	timestamp   time.Time
}

// MemoryLog is an in-memory ConversationLog used for tests/dev.
type MemoryLog struct {
	mu      sync.RWMutex
	entries []entry
}

// NewMemoryLog constructs a log backed by process memory.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

// Append implements chatbot.ConversationLog.
func (l *MemoryLog) Append(_ context.Context, userQuery, botResponse string, confidence float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{
		userQuery:   userQuery,
		botResponse: botResponse,
		confidence:  confidence,
		timestamp:   util.NowUTC(),
	})
	return nil
}

// Stats implements chatbot.ConversationLog.
func (l *MemoryLog) Stats(_ context.Context, topLimit int) (chatbot.Stats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := chatbot.Stats{TotalConversations: int64(len(l.entries))}
	if len(l.entries) == 0 {
		return stats, nil
	}

	var sum float64
	counts := make(map[string]int64)
	for _, e := range l.entries {
		sum += e.confidence
		counts[e.userQuery]++
	}
	stats.AverageConfidence = sum / float64(len(l.entries))

	common := make([]chatbot.CommonQuery, 0, len(counts))
	for query, count := range counts {
		common = append(common, chatbot.CommonQuery{Query: query, Count: count})
	}
	sort.Slice(common, func(i, j int) bool {
		if common[i].Count == common[j].Count {
			return common[i].Query < common[j].Query
		}
		return common[i].Count > common[j].Count
	})
	if topLimit > 0 && len(common) > topLimit {
		common = common[:topLimit]
	}
	stats.CommonQueries = common
	return stats, nil
}

var _ chatbot.ConversationLog = (*MemoryLog)(nil)
