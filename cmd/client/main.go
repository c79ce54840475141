package main

import (
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/client"
	"github.com/MKhiriev/notion-to-github/internal/config"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/tui"
	"github.com/MKhiriev/notion-to-github/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("client", cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui, err := tui.New(serverAdapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
