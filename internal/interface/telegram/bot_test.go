package telegram

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
)

type fakeSender struct {
	sent      []string
	keyboards []interface{}
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		f.sent = append(f.sent, m.Text)
		f.keyboards = append(f.keyboards, m.ReplyMarkup)
	case tgbotapi.EditMessageTextConfig:
		f.sent = append(f.sent, m.Text)
		f.keyboards = append(f.keyboards, nil)
	}
	return tgbotapi.Message{}, nil
}

type fakeService struct {
	reply      chatbot.Reply
	logged     []string
	categories []string
	faqs       []chatbot.QA
	stats      chatbot.Stats
}

func (f *fakeService) Answer(context.Context, string) (chatbot.Reply, error) {
	return f.reply, nil
}

func (f *fakeService) LogConversation(_ context.Context, query, _ string, _ float64) error {
	f.logged = append(f.logged, query)
	return nil
}

func (f *fakeService) Categories(context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeService) FAQsByCategory(context.Context, string) ([]chatbot.QA, error) {
	return f.faqs, nil
}

func (f *fakeService) Stats(context.Context) (chatbot.Stats, error) {
	return f.stats, nil
}

func newTestBot(svc chatbot.Service) (*Bot, *fakeSender) {
	fs := &fakeSender{}
	return &Bot{
		s:      fs,
		svc:    svc,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, fs
}

func userMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: 42, UserName: "student"},
		Chat: &tgbotapi.Chat{ID: 100},
		Text: text,
	}
}

func TestHandleMessageFormatsReplyAndTagsLog(t *testing.T) {
	svc := &fakeService{
		reply: chatbot.Reply{Answer: "Minimum GPA requirement is 3.0.", Confidence: 0.8, Category: "Admissions"},
	}
	b, fs := newTestBot(svc)

	b.handleMessage(context.Background(), userMessage("admission requirements"))

	if len(fs.sent) != 1 {
		t.Fatalf("expected 1 message sent, got %d", len(fs.sent))
	}
	if !strings.HasPrefix(fs.sent[0], "🎯 *Admissions*\n\n") {
		t.Fatalf("unexpected formatting: %q", fs.sent[0])
	}
	if fs.keyboards[0] != nil {
		t.Fatalf("no keyboard expected for confident reply, got %+v", fs.keyboards[0])
	}
	if len(svc.logged) != 1 || svc.logged[0] != "[TG:student] admission requirements" {
		t.Fatalf("log not tagged with username: %+v", svc.logged)
	}
}

func TestHandleMessageAddsHelpKeyboardOnLowConfidence(t *testing.T) {
	svc := &fakeService{
		reply: chatbot.Reply{Answer: chatbot.FallbackAnswer, Confidence: 0.1, Category: chatbot.GeneralCategory},
	}
	b, fs := newTestBot(svc)

	b.handleMessage(context.Background(), userMessage("xyzzy plugh"))

	if len(fs.sent) != 1 {
		t.Fatalf("expected 1 message sent, got %d", len(fs.sent))
	}
	if !strings.HasPrefix(fs.sent[0], "❓ *General*") {
		t.Fatalf("unexpected formatting: %q", fs.sent[0])
	}
	kb, ok := fs.keyboards[0].(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected help keyboard, got %+v", fs.keyboards[0])
	}
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("expected 3 keyboard rows, got %d", len(kb.InlineKeyboard))
	}
}

func TestHandleMessageIgnoresBlankText(t *testing.T) {
	b, fs := newTestBot(&fakeService{})

	b.handleMessage(context.Background(), userMessage("   "))

	if len(fs.sent) != 0 {
		t.Fatalf("expected no messages, got %+v", fs.sent)
	}
}

func TestStartCommandSendsWelcomeWithQuickQuestions(t *testing.T) {
	b, fs := newTestBot(&fakeService{})

	msg := userMessage("/start")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}
	b.handleMessage(context.Background(), msg)

	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "Welcome to College Helpdesk Bot") {
		t.Fatalf("welcome not sent: %+v", fs.sent)
	}
	kb, ok := fs.keyboards[0].(tgbotapi.InlineKeyboardMarkup)
	if !ok || len(kb.InlineKeyboard) != 4 {
		t.Fatalf("expected 4 quick question rows, got %+v", fs.keyboards[0])
	}
}

func TestCategoriesCommandBuildsOneButtonPerCategory(t *testing.T) {
	svc := &fakeService{categories: []string{"Academic", "Admissions", "Library"}}
	b, fs := newTestBot(svc)

	msg := userMessage("/categories")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 11}}
	b.handleMessage(context.Background(), msg)

	kb, ok := fs.keyboards[0].(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected category keyboard, got %+v", fs.keyboards[0])
	}
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(kb.InlineKeyboard))
	}
	if kb.InlineKeyboard[2][0].CallbackData == nil || *kb.InlineKeyboard[2][0].CallbackData != "category_Library" {
		t.Fatalf("unexpected callback data: %+v", kb.InlineKeyboard[2][0])
	}
}

func TestQuickCallbackAnswersMappedQuestion(t *testing.T) {
	svc := &fakeService{
		reply: chatbot.Reply{Answer: "Complete the online application.", Confidence: 0.9, Category: "Admissions"},
	}
	b, fs := newTestBot(svc)

	cb := &tgbotapi.CallbackQuery{
		ID:      "cb1",
		Data:    "quick_admission",
		Message: &tgbotapi.Message{MessageID: 7, Chat: &tgbotapi.Chat{ID: 100}},
	}
	b.handleCallback(context.Background(), cb)

	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "Complete the online application.") {
		t.Fatalf("quick answer not sent: %+v", fs.sent)
	}
	if len(svc.logged) != 1 || svc.logged[0] != "What are the admission requirements?" {
		t.Fatalf("quick question not logged: %+v", svc.logged)
	}
}

func TestCategoryCallbackListsFAQsWithTruncation(t *testing.T) {
	long := strings.Repeat("a", 250)
	svc := &fakeService{
		faqs: []chatbot.QA{
			{Question: "How do I register?", Answer: long},
			{Question: "Q2", Answer: "A2"},
			{Question: "Q3", Answer: "A3"},
			{Question: "Q4", Answer: "A4"},
			{Question: "Q5", Answer: "A5"},
			{Question: "Q6", Answer: "A6"},
		},
	}
	b, fs := newTestBot(svc)

	cb := &tgbotapi.CallbackQuery{
		ID:      "cb2",
		Data:    "category_Academic",
		Message: &tgbotapi.Message{MessageID: 8, Chat: &tgbotapi.Chat{ID: 100}},
	}
	b.handleCallback(context.Background(), cb)

	if len(fs.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fs.sent))
	}
	out := fs.sent[0]
	if !strings.Contains(out, "📂 *Academic FAQs:*") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("a", 197)+"...") {
		t.Fatalf("long answer not truncated: %q", out)
	}
	if strings.Contains(out, "Q6") {
		t.Fatalf("more than 5 FAQs rendered: %q", out)
	}
	if !strings.Contains(out, "... and 1 more questions in this category.") {
		t.Fatalf("missing overflow note: %q", out)
	}
}

func TestCategoryCallbackEmptyCategory(t *testing.T) {
	b, fs := newTestBot(&fakeService{})

	cb := &tgbotapi.CallbackQuery{
		ID:      "cb3",
		Data:    "category_Nope",
		Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: 100}},
	}
	b.handleCallback(context.Background(), cb)

	if len(fs.sent) != 1 || fs.sent[0] != "No FAQs found for Nope" {
		t.Fatalf("unexpected reply: %+v", fs.sent)
	}
}

func TestStatsCommandRendersCounters(t *testing.T) {
	svc := &fakeService{
		stats: chatbot.Stats{
			TotalConversations: 12,
			AverageConfidence:  0.4567,
			CommonQueries: []chatbot.CommonQuery{
				{Query: "library hours", Count: 4},
				{Query: "admission requirements", Count: 2},
			},
		},
	}
	b, fs := newTestBot(svc)

	msg := userMessage("/stats")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}
	b.handleMessage(context.Background(), msg)

	if len(fs.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fs.sent))
	}
	out := fs.sent[0]
	if !strings.Contains(out, "Total Conversations: 12") {
		t.Fatalf("missing total: %q", out)
	}
	if !strings.Contains(out, "Average Confidence: 0.46") {
		t.Fatalf("missing rounded average: %q", out)
	}
	if !strings.Contains(out, "1. library hours (4x)") {
		t.Fatalf("missing top query: %q", out)
	}
}

func TestTruncateAnswerKeepsShortAnswers(t *testing.T) {
	if got := truncateAnswer("short"); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestConfidenceEmojiThresholds(t *testing.T) {
	cases := []struct {
		confidence float64
		want       string
	}{
		{0.9, "🎯"},
		{0.71, "🎯"},
		{0.7, "📍"},
		{0.41, "📍"},
		{0.4, "❓"},
		{0.0, "❓"},
	}
	for _, tc := range cases {
		if got := confidenceEmoji(tc.confidence); got != tc.want {
			t.Fatalf("confidenceEmoji(%v) = %q, want %q", tc.confidence, got, tc.want)
		}
	}
}
