//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/flightrig/internal/config"
	"github.com/zeusync/flightrig/internal/sim"
)

func InitializeWorld(settings *config.Settings, script *sim.Script) (*sim.World, error) {
	wire.Build(ProvideLogger, sim.New)
	return nil, nil
}
