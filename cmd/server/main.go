package main

import (
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/config"
	"github.com/MKhiriev/notion-to-github/internal/handler"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/server"
	"github.com/MKhiriev/notion-to-github/internal/service"
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

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("server", cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("github_api", cfg.GitHub.APIBaseURL).Msg("received configs")

	// A linked-in build version wins over the configured one.
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	} else if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	notion := adapter.NewNotionAdapter(log)
	github, err := adapter.NewGitHubAdapter(cfg.GitHub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating github adapter")
	}

	services, err := service.NewServices(notion, github, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
