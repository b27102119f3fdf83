package estimate

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/sunvolt/solarsite/internal/domain/lead"
	apperrors "github.com/sunvolt/solarsite/pkg/errors"
	"github.com/sunvolt/solarsite/pkg/money"
)

// Service exposes the quote operation behind the estimator form.
type Service interface {
	Quote(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg        Config
	dispatcher lead.Dispatcher
	stats      lead.StatsStore
	logger     *slog.Logger
}

// NewService wires up the estimate domain.
func NewService(cfg Config, dispatcher lead.Dispatcher, stats lead.StatsStore, logger *slog.Logger) Service {
	return &service{
		cfg:        cfg,
		dispatcher: dispatcher,
		stats:      stats,
		logger:     logger.With("component", "estimate.service"),
	}
}

// Quote validates the form input, runs the calculator and returns the
// display values. The lead archive and the counters are updated behind the
// response; their failures are logged and swallowed, never retried, and the
// visitor sees the quote either way.
func (s *service) Quote(ctx context.Context, req Request) (Response, error) {
	kind, err := parseKind(req.Mode)
	if err != nil {
		return Response{}, err
	}

	result, err := Calculate(Input{Kind: kind, Amount: req.Amount})
	if err != nil {
		return Response{}, err
	}

	resp := s.buildResponse(result)
	record := s.buildRecord(result, req.Location)

	if err := s.dispatcher.Enqueue(ctx, record); err != nil {
		s.logger.Warn("lead dispatch failed", "error", err, "location", record.Location)
	}
	// Counters see the visitor's own location, not the archive default, so
	// a blank form never ranks the fallback tag on the landing page.
	visitorLoc := strings.TrimSpace(req.Location)
	if err := s.stats.RecordQuote(ctx, lead.CanonicalLocation(visitorLoc), visitorLoc, result.SystemSizeKw); err != nil {
		s.logger.Warn("quote counters update failed", "error", err)
	}

	s.logger.Info("quote served",
		"mode", string(kind),
		"systemKw", result.SystemSizeKw,
		"estimatedCost", record.EstimatedCost,
	)
	return resp, nil
}

func (s *service) buildResponse(r Result) Response {
	cost := int(math.Round(r.EstimatedCost))
	savings := int(math.Round(r.MonthlySavings))
	return Response{
		MonthlyUnits:   int(math.Round(r.MonthlyUnits)),
		MonthlyBill:    int(math.Round(r.MonthlyBill)),
		SystemSizeKw:   r.SystemSizeKw,
		SystemSize:     FormatKw(r.SystemSizeKw),
		EstimatedCost:  cost,
		CostDisplay:    money.FormatINR(int64(cost)),
		MonthlySavings: savings,
		SavingsDisplay: money.FormatINR(int64(savings)),
		PaybackYears:   r.PaybackYears,
		PaybackPeriod:  formatPayback(r.PaybackYears),
		WhatsAppURL:    BuildWhatsAppLink(s.cfg.WhatsAppPhone, r),
	}
}

func (s *service) buildRecord(r Result, location string) lead.Record {
	loc := strings.TrimSpace(location)
	if loc == "" {
		loc = s.cfg.DefaultLocation
	}
	return lead.Record{
		BillAmount:       int(math.Round(r.MonthlyBill)),
		MonthlyUnits:     int(math.Round(r.MonthlyUnits)),
		SystemSizeKw:     FormatKw(r.SystemSizeKw),
		EstimatedCost:    int(math.Round(r.EstimatedCost)),
		EstimatedSavings: int(math.Round(r.MonthlySavings)),
		PaybackPeriod:    formatPayback(r.PaybackYears),
		Location:         loc,
		Source:           s.cfg.LeadSource,
	}
}

func parseKind(mode string) (InputKind, error) {
	switch InputKind(strings.ToLower(strings.TrimSpace(mode))) {
	case KindBill:
		return KindBill, nil
	case KindUnits:
		return KindUnits, nil
	default:
		return "", apperrors.Wrap("invalid_input", "mode must be bill or units", nil)
	}
}

func formatPayback(years float64) string {
	return fmt.Sprintf("%.1f years", years)
}
