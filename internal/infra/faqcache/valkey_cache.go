package faqcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
)

// ValkeyCache is a read-through cache in front of a FAQ repository. Entries
// carry a TTL, so a refreshed table is picked up without a restart; a cache
// fault never surfaces as a storage error, it just falls through to the
// underlying repository.
type ValkeyCache struct {
	inner  chatbot.FAQRepository
	client valkey.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewValkeyCache wraps the repository with a Valkey-backed cache.
func NewValkeyCache(inner chatbot.FAQRepository, client valkey.Client, prefix string, ttl time.Duration, logger *slog.Logger) *ValkeyCache {
	if prefix == "" {
		prefix = "faq"
	}
	return &ValkeyCache{
		inner:  inner,
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With("component", "faqcache"),
	}
}

// EnsureSeeded delegates to the repository and drops the cached snapshot so
// the next read sees freshly seeded data.
func (c *ValkeyCache) EnsureSeeded(ctx context.Context, records []chatbot.FAQRecord) error {
	if err := c.inner.EnsureSeeded(ctx, records); err != nil {
		return err
	}
	c.invalidate(ctx, c.recordsKey(), c.categoriesKey())
	return nil
}

// ListAll implements chatbot.FAQRepository.
func (c *ValkeyCache) ListAll(ctx context.Context) ([]chatbot.FAQRecord, error) {
	var cached []chatbot.FAQRecord
	if c.fetch(ctx, c.recordsKey(), &cached) {
		return cached, nil
	}
	records, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, c.recordsKey(), records)
	return records, nil
}

// Categories implements chatbot.FAQRepository.
func (c *ValkeyCache) Categories(ctx context.Context) ([]string, error) {
	var cached []string
	if c.fetch(ctx, c.categoriesKey(), &cached) {
		return cached, nil
	}
	categories, err := c.inner.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, c.categoriesKey(), categories)
	return categories, nil
}

// ByCategory implements chatbot.FAQRepository.
func (c *ValkeyCache) ByCategory(ctx context.Context, category string) ([]chatbot.QA, error) {
	key := c.categoryKey(category)
	var cached []chatbot.QA
	if c.fetch(ctx, key, &cached) {
		return cached, nil
	}
	faqs, err := c.inner.ByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, faqs)
	return faqs, nil
}

func (c *ValkeyCache) fetch(ctx context.Context, key string, out any) bool {
	payload, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		c.logger.Warn("cache payload corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c *ValkeyCache) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	builder := c.client.B().Set().Key(key).Value(string(payload))
	var cmd valkey.Completed
	if c.ttl > 0 {
		ttl := c.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func (c *ValkeyCache) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := c.client.Do(ctx, c.client.B().Del().Key(key).Build()).Error(); err != nil {
			c.logger.Warn("cache invalidate failed", "key", key, "error", err)
		}
	}
}

func (c *ValkeyCache) recordsKey() string {
	return fmt.Sprintf("%s:records", c.prefix)
}

func (c *ValkeyCache) categoriesKey() string {
	return fmt.Sprintf("%s:categories", c.prefix)
}

func (c *ValkeyCache) categoryKey(category string) string {
	return fmt.Sprintf("%s:category:%s", c.prefix, category)
}

var _ chatbot.FAQRepository = (*ValkeyCache)(nil)
