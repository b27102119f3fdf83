package statstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRecordQuoteAccumulates(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.RecordQuote(ctx, "jaipur", "Jaipur", 3))
	require.NoError(t, store.RecordQuote(ctx, "jaipur", "JAIPUR", 2.5))
	require.NoError(t, store.RecordQuote(ctx, "pune", "Pune", 1))

	stats, err := store.Summary(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalQuotes)
	require.InDelta(t, 6.5, stats.TotalKw, 1e-9)
}

func TestMemoryStoreTopLocationsRankedWithDisplay(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.RecordQuote(ctx, "jaipur", "Jaipur", 3))
	require.NoError(t, store.RecordQuote(ctx, "jaipur", "jaipur city", 2))
	require.NoError(t, store.RecordQuote(ctx, "pune", "Pune", 1.5))

	top, err := store.TopLocations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	// First display form wins; later spellings only bump the count.
	require.Equal(t, "Jaipur", top[0].Location)
	require.EqualValues(t, 2, top[0].Count)
	require.Equal(t, "Pune", top[1].Location)
	require.EqualValues(t, 1, top[1].Count)
}

func TestMemoryStoreTopLocationsHonorsLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, loc := range []string{"jaipur", "pune", "indore"} {
		require.NoError(t, store.RecordQuote(ctx, loc, "", 1))
	}

	top, err := store.TopLocations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
}

func TestMemoryStoreBlankLocationCountsQuoteOnly(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.RecordQuote(ctx, "", "", 2))

	stats, err := store.Summary(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.TotalQuotes)

	top, err := store.TopLocations(ctx, 5)
	require.NoError(t, err)
	require.Empty(t, top)
}
