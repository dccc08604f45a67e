package main

import (
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		// the log file location is part of the config
		logger.NewLogger("go-pass-vault-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-pass-vault-client", cfg.App.LogFile)
	log.SetLevel(cfg.App.LogLevel)

	services, err := service.NewClientServices(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		os.Exit(1)
	}
}
