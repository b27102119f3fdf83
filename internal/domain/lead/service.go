package lead

import (
	"context"
	"log/slog"

	apperrors "github.com/sunvolt/solarsite/pkg/errors"
)

// Service exposes the read side of the lead archive to the sales endpoints.
type Service interface {
	Recent(ctx context.Context, limit int) ([]Record, error)
	Overview(ctx context.Context) (Overview, error)
}

type service struct {
	repo     Repository
	stats    StatsStore
	maxLimit int
	rankSize int
	logger   *slog.Logger
}

// NewService wires up the lead domain. maxLimit caps the Recent listing,
// rankSize bounds the location leaderboard.
func NewService(repo Repository, stats StatsStore, maxLimit, rankSize int, logger *slog.Logger) Service {
	if maxLimit <= 0 {
		maxLimit = 50
	}
	if rankSize <= 0 {
		rankSize = 5
	}
	return &service{
		repo:     repo,
		stats:    stats,
		maxLimit: maxLimit,
		rankSize: rankSize,
		logger:   logger.With("component", "lead.service"),
	}
}

func (s *service) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}
	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap("lead_error", "failed to load recent leads", err)
	}
	return records, nil
}

func (s *service) Overview(ctx context.Context) (Overview, error) {
	summary, err := s.stats.Summary(ctx)
	if err != nil {
		return Overview{}, apperrors.Wrap("stats_error", "failed to load quote counters", err)
	}
	locations, err := s.stats.TopLocations(ctx, s.rankSize)
	if err != nil {
		s.logger.Warn("location ranking unavailable", "error", err)
		locations = nil
	}
	return Overview{
		Quotes:       summary.TotalQuotes,
		TotalKw:      summary.TotalKw,
		TopLocations: locations,
	}, nil
}
