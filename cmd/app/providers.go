package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/campusdesk/college-helpdesk/internal/bootstrap"
	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
	"github.com/campusdesk/college-helpdesk/internal/infra/chatlog"
	"github.com/campusdesk/college-helpdesk/internal/infra/config"
	"github.com/campusdesk/college-helpdesk/internal/infra/faqcache"
	"github.com/campusdesk/college-helpdesk/internal/infra/faqrepo"
	"github.com/campusdesk/college-helpdesk/internal/interface/telegram"
)

func provideMatchingConfig(cfg *config.Config) chatbot.Config {
	return chatbot.Config{
		ConfidenceThreshold: cfg.Matching.ConfidenceThreshold,
		QuestionWeight:      cfg.Matching.QuestionWeight,
		KeywordWeight:       cfg.Matching.KeywordWeight,
		TopQueries:          cfg.Matching.TopQueries,
	}
}

func provideHTTPConfig(cfg *config.Config) config.HTTPConfig {
	return cfg.HTTP
}

func provideAdminConfig(cfg *config.Config) config.AdminConfig {
	return cfg.Admin
}

// providePostgresPool dials the configured database once and is shared by the
// FAQ repository and the conversation log. A nil pool selects the in-memory
// fallbacks.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using in-memory storage")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using in-memory storage", "error", err)
		return nil
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using in-memory storage", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using in-memory storage", "error", err)
		pool.Close()
		return nil
	}
	return pool
}

func provideFAQRepository(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) chatbot.FAQRepository {
	var repo chatbot.FAQRepository

	if pool != nil {
		pg := faqrepo.NewPostgresRepository(pool)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx); err != nil {
			logger.Error("faq migration failed, using memory repository", "error", err)
		} else {
			logger.Info("postgres faq repository enabled")
			repo = pg
		}
	}
	if repo == nil {
		repo = faqrepo.NewMemoryRepository()
	}

	if cfg.Storage.Valkey.Enabled {
		if client := buildValkeyClient(cfg, logger); client != nil {
			logger.Info("valkey faq cache enabled", "addr", cfg.Storage.Valkey.Addr)
			repo = faqcache.NewValkeyCache(repo, client, "faq", cfg.Storage.Valkey.CacheTTL, logger)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureSeeded(ctx, chatbot.SeedRecords()); err != nil {
		logger.Error("faq seeding failed", "error", err)
	}
	return repo
}

func provideConversationLog(pool *pgxpool.Pool, logger *slog.Logger) chatbot.ConversationLog {
	if pool != nil {
		pg := chatlog.NewPostgresLog(pool)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pg.Migrate(ctx); err != nil {
			logger.Error("chat log migration failed, using memory log", "error", err)
		} else {
			logger.Info("postgres conversation log enabled")
			return pg
		}
	}
	return chatlog.NewMemoryLog()
}

func buildValkeyClient(cfg *config.Config, logger *slog.Logger) valkey.Client {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.Storage.Valkey.Addr},
	})
	if err != nil {
		logger.Error("failed to create valkey client, cache disabled", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, cache disabled", "error", err)
		client.Close()
		return nil
	}
	return client
}

func provideBot(cfg *config.Config, svc chatbot.Service, logger *slog.Logger) bootstrap.Poller {
	token := strings.TrimSpace(cfg.Telegram.Token)
	if token == "" {
		logger.Info("telegram token not set, bot disabled")
		return nil
	}
	bot, err := telegram.New(token, cfg.Telegram.PollTimeout, svc, logger)
	if err != nil {
		logger.Error("telegram bot initialization failed, bot disabled", "error", err)
		return nil
	}
	return bot
}
