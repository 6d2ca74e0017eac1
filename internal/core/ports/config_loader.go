package ports

import "go.trai.ch/ferry/internal/core/domain"

// ConfigLoader defines the interface for loading the release configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file and the local settings file from the given working directory.
	// A missing local settings file or shared root yields domain.ErrConfigurationMissing.
	Load(cwd string, files domain.ConfigFiles) (*domain.Settings, error)
}
