package injector

import (
	"github.com/zeusync/flightrig/internal/config"
	"github.com/zeusync/flightrig/internal/core/observability/log"
)

// ProvideLogger builds the process logger from the log section of settings.
func ProvideLogger(settings *config.Settings) (log.Log, error) {
	level, err := log.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, err
	}
	if settings.Log.Development {
		return log.NewDevelopment(level), nil
	}
	return log.New(level), nil
}
