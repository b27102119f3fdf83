//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/sunvolt/solarsite/internal/bootstrap"
	"github.com/sunvolt/solarsite/internal/domain/estimate"
	"github.com/sunvolt/solarsite/internal/infra/config"
	httpiface "github.com/sunvolt/solarsite/internal/interface/http"
	"github.com/sunvolt/solarsite/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideEstimateConfig,
		provideLeadRepository,
		provideLeadDispatcher,
		provideStatsStore,
		provideLeadService,
		estimate.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
