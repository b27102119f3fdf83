package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/sunvolt/solarsite/internal/domain/estimate"
	"github.com/sunvolt/solarsite/internal/domain/lead"
	"github.com/sunvolt/solarsite/internal/infra/config"
	"github.com/sunvolt/solarsite/internal/infra/leadqueue"
	"github.com/sunvolt/solarsite/internal/infra/leadrepo"
	"github.com/sunvolt/solarsite/internal/infra/statstore"
)

// leadSource tags every archived record with where it came from. The only
// entry point today is the landing page form.
const leadSource = "website"

func provideEstimateConfig(cfg *config.Config) estimate.Config {
	return estimate.Config{
		WhatsAppPhone:   cfg.Site.WhatsAppPhone,
		DefaultLocation: cfg.Site.DefaultLocation,
		LeadSource:      leadSource,
	}
}

func provideLeadRepository(cfg *config.Config, logger *slog.Logger) (lead.Repository, func()) {
	fallback := leadrepo.NewMemoryRepository()
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Leads.Postgres.DSN)
	if dsn == "" {
		logger.Info("leads postgres dsn not set, using memory repository")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, noop
	}
	if cfg.Leads.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Leads.Postgres.MaxConns
	}
	if cfg.Leads.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Leads.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	logger.Info("leads postgres repository enabled")
	return leadrepo.NewPostgresRepository(pool), pool.Close
}

func provideLeadDispatcher(cfg *config.Config, repo lead.Repository, logger *slog.Logger) (lead.Dispatcher, func()) {
	handler := func(ctx context.Context, rec lead.Record) {
		if _, err := repo.Insert(ctx, rec); err != nil {
			logger.Warn("lead archive write failed", "error", err, "location", rec.Location)
		}
	}

	if cfg.Leads.Valkey.Enabled {
		client, ok := dialValkey(cfg.Leads.Valkey.Addr, logger)
		if ok {
			logger.Info("valkey lead queue enabled", "addr", cfg.Leads.Valkey.Addr)
			queue := leadqueue.NewValkeyDispatcher(client, cfg.Leads.QueueKey, logger)
			queue.SetHandler(handler)
			return queue, func() {
				queue.Close()
				client.Close()
			}
		}
		logger.Error("lead queue unavailable, dispatching in process")
	}
	return leadqueue.NewImmediateDispatcher(handler), func() {}
}

func provideStatsStore(cfg *config.Config, logger *slog.Logger) (lead.StatsStore, func()) {
	if cfg.Stats.Valkey.Enabled {
		client, ok := dialValkey(cfg.Stats.Valkey.Addr, logger)
		if ok {
			logger.Info("valkey quote counters enabled", "addr", cfg.Stats.Valkey.Addr)
			return statstore.NewValkeyStore(client, cfg.Stats.KeyPrefix), client.Close
		}
		logger.Error("stats store unavailable, counting in process")
	}
	return statstore.NewMemoryStore(), func() {}
}

func provideLeadService(repo lead.Repository, stats lead.StatsStore, cfg *config.Config, logger *slog.Logger) lead.Service {
	return lead.NewService(repo, stats, cfg.Leads.RecentLimit, cfg.Stats.TopLocations, logger)
}

func dialValkey(addr string, logger *slog.Logger) (valkey.Client, bool) {
	opt, err := buildValkeyOptions(addr)
	if err != nil {
		logger.Error("invalid valkey configuration", "error", err)
		return nil, false
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client", "error", err)
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed", "error", err)
		client.Close()
		return nil, false
	}
	return client, true
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(addr, "://") {
		opt, err = valkey.ParseURL(addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
