package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
)

const (
	browseCategoriesCmd = "browse_categories"
	categoryPrefix      = "category_"
	quickPrefix         = "quick_"

	categoryPageSize  = 5
	answerTruncateLen = 200
)

const welcomeMessage = `🎓 *Welcome to College Helpdesk Bot!*

I'm here to help you with all your college-related questions!

📚 *What I can help with:*
• Admissions & Applications
• Academic Information
• Financial Aid & Scholarships
• Campus Life & Housing
• Technical Support
• Library Services

💬 *How to use:*
• Just type your question and I'll do my best to help
• Use /categories to see all available topics
• Use /help for more commands

🚀 *Quick Start:* Try asking "What are the admission requirements?"`

const helpMessage = `🆘 *Available Commands:*

/start - Welcome message and quick options
/help - Show this help message
/categories - List all FAQ categories
/stats - Show bot usage statistics

💡 *Tips:*
• Ask questions in natural language
• Be specific for better answers
• Try rephrasing if you don't get the right answer
• Contact help@college.edu for complex issues

🔄 *Examples:*
• "When is the application deadline?"
• "How do I register for classes?"
• "What meal plans are available?"
• "How to reset my password?"`

const trouble = "❌ Sorry, I encountered an error. Please try again or contact support at help@college.edu"

var quickQuestions = map[string]string{
	"quick_admission": "What are the admission requirements?",
	"quick_financial": "What financial aid is available?",
	"quick_housing":   "What housing options are available?",
	"quick_library":   "What are library hours?",
}

// Bot answers helpdesk questions over Telegram long polling.
type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	svc         chatbot.Service
	logger      *slog.Logger
	pollTimeout time.Duration
}

// New authorizes against the Telegram API and builds the bot.
func New(token string, pollTimeout time.Duration, svc chatbot.Service, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram authorization: %w", err)
	}
	return &Bot{
		api:         api,
		s:           botAPISender{api: api},
		svc:         svc,
		logger:      logger.With("component", "telegram.bot"),
		pollTimeout: pollTimeout,
	}, nil
}

// Run consumes updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.pollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("telegram bot started", "username", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message != nil {
				b.handleMessage(ctx, update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				b.handleCallback(ctx, update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	username := "Unknown"
	if msg.From != nil && msg.From.UserName != "" {
		username = msg.From.UserName
	}
	b.logger.Info("incoming message", "username", username, "text", msg.Text)

	b.sendChatAction(msg.Chat.ID)

	reply, err := b.svc.Answer(ctx, msg.Text)
	if err != nil {
		b.logger.Error("answer failed", "error", err)
		b.sendPlain(msg.Chat.ID, trouble)
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, formatReply(reply))
	out.ParseMode = tgbotapi.ModeMarkdown
	if reply.Confidence < 0.4 {
		out.ReplyMarkup = lowConfidenceKeyboard()
	}
	b.send(out)

	tagged := fmt.Sprintf("[TG:%s] %s", username, msg.Text)
	if err := b.svc.LogConversation(ctx, tagged, reply.Answer, reply.Confidence); err != nil {
		b.logger.Warn("conversation log failed", "error", err)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		out := tgbotapi.NewMessage(msg.Chat.ID, welcomeMessage)
		out.ParseMode = tgbotapi.ModeMarkdown
		out.ReplyMarkup = quickStartKeyboard()
		b.send(out)
	case "help":
		b.sendMarkdown(msg.Chat.ID, helpMessage)
	case "categories":
		b.sendCategoryPicker(ctx, msg.Chat.ID)
	case "stats":
		b.sendStats(ctx, msg.Chat.ID)
	default:
		b.sendPlain(msg.Chat.ID, "Unknown command. Use /help to see what I can do.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answerCallback(cb.ID)
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	switch {
	case cb.Data == browseCategoriesCmd:
		b.sendCategoryPicker(ctx, chatID)

	case strings.HasPrefix(cb.Data, quickPrefix):
		question, ok := quickQuestions[cb.Data]
		if !ok {
			return
		}
		reply, err := b.svc.Answer(ctx, question)
		if err != nil {
			b.logger.Error("answer failed", "error", err)
			b.sendPlain(chatID, trouble)
			return
		}
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, formatReply(reply))
		edit.ParseMode = tgbotapi.ModeMarkdown
		b.send(edit)
		if err := b.svc.LogConversation(ctx, question, reply.Answer, reply.Confidence); err != nil {
			b.logger.Warn("conversation log failed", "error", err)
		}

	case strings.HasPrefix(cb.Data, categoryPrefix):
		category := strings.TrimPrefix(cb.Data, categoryPrefix)
		faqs, err := b.svc.FAQsByCategory(ctx, category)
		if err != nil {
			b.logger.Error("category lookup failed", "error", err)
			b.sendPlain(chatID, trouble)
			return
		}
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, formatCategoryFAQs(category, faqs))
		edit.ParseMode = tgbotapi.ModeMarkdown
		b.send(edit)
	}
}

func (b *Bot) sendCategoryPicker(ctx context.Context, chatID int64) {
	categories, err := b.svc.Categories(ctx)
	if err != nil {
		b.logger.Error("category listing failed", "error", err)
		b.sendPlain(chatID, trouble)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📂 "+category, categoryPrefix+category),
		))
	}

	out := tgbotapi.NewMessage(chatID, "📁 *Select a category to explore:*")
	out.ParseMode = tgbotapi.ModeMarkdown
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(out)
}

func (b *Bot) sendStats(ctx context.Context, chatID int64) {
	stats, err := b.svc.Stats(ctx)
	if err != nil {
		b.logger.Error("stats aggregation failed", "error", err)
		b.sendPlain(chatID, "❌ Sorry, couldn't retrieve statistics.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 *Bot Statistics:*\n\n")
	fmt.Fprintf(&sb, "💬 Total Conversations: %d\n", stats.TotalConversations)
	fmt.Fprintf(&sb, "🎯 Average Confidence: %.2f\n", stats.AverageConfidence)
	if len(stats.CommonQueries) > 0 {
		sb.WriteString("\n🔥 *Most Asked Questions:*\n")
		for i, q := range stats.CommonQueries {
			fmt.Fprintf(&sb, "%d. %s (%dx)\n", i+1, q.Query, q.Count)
		}
	}
	b.sendMarkdown(chatID, sb.String())
}

func formatReply(reply chatbot.Reply) string {
	return fmt.Sprintf("%s *%s*\n\n%s", confidenceEmoji(reply.Confidence), reply.Category, reply.Answer)
}

func formatCategoryFAQs(category string, faqs []chatbot.QA) string {
	if len(faqs) == 0 {
		return fmt.Sprintf("No FAQs found for %s", category)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📂 *%s FAQs:*\n\n", category)
	shown := faqs
	if len(shown) > categoryPageSize {
		shown = shown[:categoryPageSize]
	}
	for i, faq := range shown {
		fmt.Fprintf(&sb, "*Q%d:* %s\n", i+1, faq.Question)
		fmt.Fprintf(&sb, "*A:* %s\n\n", truncateAnswer(faq.Answer))
	}
	if len(faqs) > categoryPageSize {
		fmt.Fprintf(&sb, "... and %d more questions in this category.\n", len(faqs)-categoryPageSize)
	}
	sb.WriteString("\n💬 *Ask me anything specific!*")
	return sb.String()
}

func truncateAnswer(answer string) string {
	runes := []rune(answer)
	if len(runes) <= answerTruncateLen {
		return answer
	}
	return string(runes[:answerTruncateLen-3]) + "..."
}

func confidenceEmoji(confidence float64) string {
	switch {
	case confidence > 0.7:
		return "🎯"
	case confidence > 0.4:
		return "📍"
	default:
		return "❓"
	}
}

func quickStartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📝 Admission Requirements", "quick_admission")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💰 Financial Aid", "quick_financial")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🏠 Housing Options", "quick_housing")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📚 Library Hours", "quick_library")),
	)
}

func lowConfidenceKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📞 Contact Support", "tel:+15551234567")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("🌐 Visit Website", "https://college.edu/help")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📂 Browse Categories", browseCategoriesCmd)),
	)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.s.Send(c); err != nil {
		b.logger.Warn("telegram send failed", "error", err)
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	out := tgbotapi.NewMessage(chatID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	b.send(out)
}

func (b *Bot) sendPlain(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendChatAction(chatID int64) {
	if b.api == nil {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.logger.Warn("chat action failed", "error", err)
	}
}

func (b *Bot) answerCallback(id string) {
	if b.api == nil {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(id, "")); err != nil {
		b.logger.Warn("callback answer failed", "error", err)
	}
}
