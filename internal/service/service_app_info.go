package service

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
)

type appInfoService struct {
	appVersion  string
	buildDate   string
	buildCommit string

	logger *logger.Logger
}

// NewAppInfoService reports the configured version, falling back to the
// version embedded at build time.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  version,
		buildDate:   buildInfo.BuildDate(),
		buildCommit: buildInfo.BuildCommit(),
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version: s.appVersion,
		Date:    s.buildDate,
		Commit:  s.buildCommit,
	}
}
