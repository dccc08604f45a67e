package http

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

type Handler struct {
	services *service.Services

	server    config.Server
	rateLimit config.RateLimit

	traceIDs utils.IDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		server:    cfg.Server,
		rateLimit: cfg.RateLimit,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
