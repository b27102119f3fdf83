package lead

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/sunvolt/solarsite/pkg/errors"
)

func TestServiceRecentCapsLimit(t *testing.T) {
	repo := &stubRepository{}
	svc := NewService(repo, &stubStatsStore{}, 25, 5, testLogger())

	_, err := svc.Recent(context.Background(), 500)
	require.NoError(t, err)
	require.Equal(t, 25, repo.lastLimit)

	_, err = svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 25, repo.lastLimit)

	_, err = svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 10, repo.lastLimit)
}

func TestServiceRecentRepoFailure(t *testing.T) {
	repo := &stubRepository{err: errors.New("connection refused")}
	svc := NewService(repo, &stubStatsStore{}, 25, 5, testLogger())

	_, err := svc.Recent(context.Background(), 10)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "lead_error"))
}

func TestServiceOverview(t *testing.T) {
	stats := &stubStatsStore{
		summary: Stats{TotalQuotes: 42, TotalKw: 96.5},
		top:     []LocationCount{{Location: "jaipur", Count: 12}},
	}
	svc := NewService(&stubRepository{}, stats, 25, 5, testLogger())

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(42), overview.Quotes)
	require.Equal(t, 96.5, overview.TotalKw)
	require.Len(t, overview.TopLocations, 1)
}

func TestServiceOverviewToleratesRankingFailure(t *testing.T) {
	stats := &stubStatsStore{
		summary: Stats{TotalQuotes: 7},
		topErr:  errors.New("zrevrange failed"),
	}
	svc := NewService(&stubRepository{}, stats, 25, 5, testLogger())

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(7), overview.Quotes)
	require.Empty(t, overview.TopLocations)
}

func TestServiceOverviewSummaryFailure(t *testing.T) {
	stats := &stubStatsStore{summaryErr: errors.New("down")}
	svc := NewService(&stubRepository{}, stats, 25, 5, testLogger())

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "stats_error"))
}

type stubRepository struct {
	records   []Record
	err       error
	lastLimit int
}

func (s *stubRepository) Insert(_ context.Context, rec Record) (Record, error) {
	if s.err != nil {
		return Record{}, s.err
	}
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *stubRepository) Recent(_ context.Context, limit int) ([]Record, error) {
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

type stubStatsStore struct {
	summary    Stats
	summaryErr error
	top        []LocationCount
	topErr     error
}

func (s *stubStatsStore) RecordQuote(context.Context, string, string, float64) error {
	return nil
}

func (s *stubStatsStore) Summary(context.Context) (Stats, error) {
	if s.summaryErr != nil {
		return Stats{}, s.summaryErr
	}
	return s.summary, nil
}

func (s *stubStatsStore) TopLocations(context.Context, int) ([]LocationCount, error) {
	if s.topErr != nil {
		return nil, s.topErr
	}
	return s.top, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
