package sim

import (
	"github.com/zeusync/flightrig/internal/core/systems"
	"github.com/zeusync/flightrig/internal/flight"
)

const scriptEpsilon = 1e-9

var (
	_ systems.System     = (*ScriptInput)(nil)
	_ flight.InputSource = (*ScriptInput)(nil)
)

// ScriptInput replays a Script in simulated time. It must run before the
// flight model in each fixed step.
type ScriptInput struct {
	script  *Script
	elapsed float64
	current flight.InputSample
}

func NewScriptInput(script *Script) *ScriptInput {
	return &ScriptInput{script: script}
}

func (in *ScriptInput) Name() string { return "input" }

func (in *ScriptInput) FixedUpdate(dt float64) {
	in.current = in.at(in.elapsed)
	in.elapsed += dt
}

func (in *ScriptInput) Update(float64) {}

func (in *ScriptInput) Sample() flight.InputSample { return in.current }

// Done reports whether the whole script has been replayed.
func (in *ScriptInput) Done() bool {
	return in.elapsed+scriptEpsilon >= in.script.Duration()
}

func (in *ScriptInput) Elapsed() float64 { return in.elapsed }

func (in *ScriptInput) at(t float64) flight.InputSample {
	end := 0.0
	for _, seg := range in.script.Segments {
		end += seg.Duration
		if t+scriptEpsilon < end {
			return seg.InputSample
		}
	}
	return flight.InputSample{}
}
