package systems

import (
	"context"
	"errors"
	"sort"

	"github.com/zeusync/flightrig/internal/core/observability/log"
)

var (
	ErrInvalidStep  = errors.New("systems: fixed step must be positive")
	ErrInvalidFrame = errors.New("systems: frame delta must be positive")
)

// stepEpsilon absorbs rounding in the accumulator so that a frame of exactly
// n fixed steps runs n steps.
const stepEpsilon = 1e-9

type LoopConfig struct {
	// FixedStep is the physics tick length in seconds.
	FixedStep float64 `mapstructure:"fixed_step" yaml:"fixed_step"`
	// MaxDeltaTime caps a single frame delta; longer frames are truncated.
	MaxDeltaTime float64 `mapstructure:"max_delta_time" yaml:"max_delta_time"`
	// MaxStepsPerFrame bounds the physics catch-up work of one frame.
	MaxStepsPerFrame int `mapstructure:"max_steps_per_frame" yaml:"max_steps_per_frame"`
}

func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FixedStep:        0.02,
		MaxDeltaTime:     0.06,
		MaxStepsPerFrame: 8,
	}
}

type entry struct {
	system   System
	priority Priority
}

// Loop drives registered systems: a fixed-step accumulator feeds
// FixedUpdate, then every system gets one Update per frame, then timers
// advance by the frame delta.
type Loop struct {
	config      LoopConfig
	systems     []entry
	timers      *Timers
	accumulator float64
	stats       Stats
	logger      log.Log
}

func NewLoop(config LoopConfig, logger log.Log) (*Loop, error) {
	if config.FixedStep <= 0 {
		return nil, ErrInvalidStep
	}
	if config.MaxDeltaTime <= 0 {
		config.MaxDeltaTime = DefaultLoopConfig().MaxDeltaTime
	}
	if config.MaxStepsPerFrame <= 0 {
		config.MaxStepsPerFrame = DefaultLoopConfig().MaxStepsPerFrame
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Loop{
		config: config,
		timers: NewTimers(),
		logger: logger.Named("loop"),
	}, nil
}

// Register adds a system. Systems with a higher priority run first.
func (l *Loop) Register(s System, p Priority) {
	l.systems = append(l.systems, entry{system: s, priority: p})
	sort.SliceStable(l.systems, func(i, j int) bool {
		return l.systems[i].priority > l.systems[j].priority
	})
	l.logger.Debug("system registered", log.String("system", s.Name()), log.Int("priority", int(p)))
}

// Systems returns registered system names in execution order.
func (l *Loop) Systems() []string {
	names := make([]string, len(l.systems))
	for i, e := range l.systems {
		names[i] = e.system.Name()
	}
	return names
}

func (l *Loop) Timers() *Timers { return l.timers }

func (l *Loop) Stats() Stats { return l.stats }

func (l *Loop) Config() LoopConfig { return l.config }

// Step runs one frame of frameDelta seconds.
func (l *Loop) Step(frameDelta float64) {
	if frameDelta < 0 {
		frameDelta = 0
	}
	if frameDelta > l.config.MaxDeltaTime {
		l.stats.DroppedTime += frameDelta - l.config.MaxDeltaTime
		frameDelta = l.config.MaxDeltaTime
	}

	l.accumulator += frameDelta
	steps := 0
	for l.accumulator+stepEpsilon >= l.config.FixedStep {
		if steps == l.config.MaxStepsPerFrame {
			l.stats.DroppedTime += l.accumulator
			l.accumulator = 0
			l.logger.Warn("physics fell behind, dropping time", log.Uint64("frame", l.stats.Frames))
			break
		}
		for _, e := range l.systems {
			e.system.FixedUpdate(l.config.FixedStep)
		}
		l.accumulator -= l.config.FixedStep
		l.stats.FixedSteps++
		steps++
	}

	for _, e := range l.systems {
		e.system.Update(frameDelta)
	}

	l.timers.Advance(frameDelta)
	l.stats.Time += frameDelta
	l.stats.Frames++
}

// Run steps frames of frameDelta until done reports true or ctx is
// cancelled. A nil done runs until cancellation.
func (l *Loop) Run(ctx context.Context, frameDelta float64, done func() bool) error {
	if frameDelta <= 0 {
		return ErrInvalidFrame
	}
	for done == nil || !done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		l.Step(frameDelta)
	}
	l.logger.Debug("loop finished",
		log.Uint64("frames", l.stats.Frames),
		log.Uint64("fixed_steps", l.stats.FixedSteps),
		log.Float64("time", l.stats.Time),
	)
	return nil
}
