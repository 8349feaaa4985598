package faqrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusdesk/college-helpdesk/internal/domain/chatbot"
)

func TestEnsureSeededIsIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx, chatbot.SeedRecords()))
	first, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 16)

	require.NoError(t, repo.EnsureSeeded(ctx, chatbot.SeedRecords()))
	second, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, second, 16)
}

func TestListAllPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	seed := chatbot.SeedRecords()

	require.NoError(t, repo.EnsureSeeded(ctx, seed))
	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(seed))
	for i := range seed {
		require.Equal(t, seed[i].Question, records[i].Question)
		require.Equal(t, int64(i+1), records[i].ID)
		require.False(t, records[i].CreatedAt.IsZero())
	}
}

func TestCategoriesSortedDistinct(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx, chatbot.SeedRecords()))
	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Academic", "Admissions", "Campus Life", "Financial", "Library", "Technical"}, categories)
}

func TestByCategoryExactMatch(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeeded(ctx, chatbot.SeedRecords()))

	library, err := repo.ByCategory(ctx, "Library")
	require.NoError(t, err)
	require.Len(t, library, 2)

	// case-sensitive filter, no normalization
	lower, err := repo.ByCategory(ctx, "library")
	require.NoError(t, err)
	require.Empty(t, lower)
}
