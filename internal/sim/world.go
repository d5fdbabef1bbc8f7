package sim

import (
	"context"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/zeusync/flightrig/internal/camera"
	"github.com/zeusync/flightrig/internal/checkpoint"
	"github.com/zeusync/flightrig/internal/config"
	"github.com/zeusync/flightrig/internal/core/events/bus"
	"github.com/zeusync/flightrig/internal/core/observability/log"
	"github.com/zeusync/flightrig/internal/core/physics"
	"github.com/zeusync/flightrig/internal/core/systems"
	"github.com/zeusync/flightrig/internal/flight"
)

// Telemetry is a point-in-time view of a running world. Angles are in
// degrees.
type Telemetry struct {
	Time           float64      `yaml:"time"`
	Frames         uint64       `yaml:"frames"`
	FixedSteps     uint64       `yaml:"fixed_steps"`
	Position       physics.Vec3 `yaml:"position,flow"`
	Speed          float64      `yaml:"speed"`
	Grounded       bool         `yaml:"grounded"`
	Progress       string       `yaml:"progress"`
	Completed      int          `yaml:"completed"`
	Total          int          `yaml:"total"`
	RingsLeft      int          `yaml:"rings_left"`
	CameraDistance float64      `yaml:"camera_distance"`
	CameraLag      float64      `yaml:"camera_lag"`
	PropellerAngle float64      `yaml:"propeller_angle"`
	// Trace fingerprints the flown path; equal traces mean identical runs.
	Trace string `yaml:"trace"`
}

// World is one headless flight session. A scripted input replay flies one
// aircraft with its chase camera around a checkpoint course.
type World struct {
	ID string

	settings   config.Settings
	frameDelta float64

	loop       *systems.Loop
	events     bus.EventBus
	body       *physics.Body
	model      *flight.Model
	rig        *camera.Rig
	arm        *physics.Transform
	propellers [2]*physics.Transform
	course     *checkpoint.Course
	display    *TextDisplay
	input      *ScriptInput
	host       *host
	subs       []bus.Subscription
	logger     log.Log
}

func New(settings *config.Settings, script *Script, logger log.Log) (*World, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: no settings", config.ErrInvalidConfig)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if script == nil {
		return nil, fmt.Errorf("%w: no script", ErrInvalidScript)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNop()
	}

	w := &World{
		ID:         uuid.NewString(),
		settings:   *settings,
		frameDelta: settings.Sim.FrameDelta,
		events:     bus.New(),
		body:       physics.NewBody(config.Vec3(settings.Sim.StartPosition)),
		arm:        physics.NewTransform("camera-arm"),
		propellers: [2]*physics.Transform{
			physics.NewTransform("propeller-1"),
			physics.NewTransform("propeller-2"),
		},
		input: NewScriptInput(script),
	}
	if script.FrameDelta > 0 {
		w.frameDelta = script.FrameDelta
	}
	w.logger = logger.With(log.String("world", w.ID))

	loop, err := systems.NewLoop(settings.Sim.LoopConfig, w.logger)
	if err != nil {
		return nil, err
	}
	w.loop = loop

	w.display = NewTextDisplay(w.logger)
	course, err := checkpoint.NewCourse(
		settings.Checkpoint.RingVolumes(),
		w.display,
		loop.Timers(),
		settings.Checkpoint.DestroyDelay,
		w.events,
		w.logger,
	)
	if err != nil {
		return nil, err
	}
	w.course = course

	w.model = flight.NewModel(settings.Flight, w.body,
		flight.WithLogger(w.logger),
		flight.WithInput(w.input),
		flight.WithGround(physics.GroundPlane{Height: settings.Sim.GroundHeight}),
		flight.WithPropellers(settings.Propeller, w.propellers[0], w.propellers[1]),
	)
	w.rig = camera.NewRig(settings.Camera, w.model, w.arm, w.logger)

	loop.Register(w.input, systems.PriorityHighest)
	loop.Register(w.model, systems.PriorityHigh)
	w.host = newHost(w.body, settings.Sim.GroundHeight, course, w.events, w.logger)
	loop.Register(w.host, systems.PriorityNormal)
	loop.Register(w.rig, systems.PriorityLow)

	if err := w.subscribe(); err != nil {
		return nil, err
	}
	if interval := settings.Sim.ReportInterval; interval > 0 {
		w.scheduleReport(interval)
	}
	return w, nil
}

func (w *World) subscribe() error {
	completed, err := w.events.Subscribe(checkpoint.EventCompleted, func(e bus.Event) error {
		w.logger.Info("course finished", log.Float64("time", w.loop.Timers().Now()))
		return nil
	})
	if err != nil {
		return err
	}
	destroyed, err := w.events.Subscribe(checkpoint.EventDestroyed, func(e bus.Event) error {
		w.logger.Debug("ring removed", log.Any("ring", e.Data()), log.Int("left", len(w.course.Rings())))
		return nil
	})
	if err != nil {
		return err
	}
	w.subs = append(w.subs, completed, destroyed)
	return nil
}

func (w *World) scheduleReport(interval float64) {
	w.loop.Timers().After(interval, func() {
		t := w.Snapshot()
		w.logger.Info("telemetry",
			log.Float64("time", t.Time),
			log.Float64("speed", t.Speed),
			log.Float64("altitude", t.Position.Y()),
			log.Bool("grounded", t.Grounded),
			log.String("progress", t.Progress),
		)
		w.scheduleReport(interval)
	})
}

// Run replays the script to its end or until ctx is cancelled.
func (w *World) Run(ctx context.Context) error {
	w.logger.Info("simulation started",
		log.Float64("frame_delta", w.frameDelta),
		log.Float64("script_duration", w.input.script.Duration()),
		log.Strings("systems", w.loop.Systems()),
	)
	if err := w.loop.Run(ctx, w.frameDelta, w.input.Done); err != nil {
		return err
	}
	t := w.Snapshot()
	w.logger.Info("simulation finished",
		log.Float64("time", t.Time),
		log.String("progress", t.Progress),
		log.Int("rings_left", t.RingsLeft),
	)
	return nil
}

// Step advances the world by one frame.
func (w *World) Step() { w.loop.Step(w.frameDelta) }

func (w *World) Snapshot() Telemetry {
	stats := w.loop.Stats()
	tracker := w.course.Tracker()
	cam := w.rig.State()
	return Telemetry{
		Time:           stats.Time,
		Frames:         stats.Frames,
		FixedSteps:     stats.FixedSteps,
		Position:       w.body.Position(),
		Speed:          w.model.CurrentSpeed(),
		Grounded:       w.model.Grounded(),
		Progress:       tracker.Text(),
		Completed:      tracker.Completed(),
		Total:          tracker.Total(),
		RingsLeft:      len(w.course.Rings()),
		CameraDistance: cam.Distance,
		CameraLag:      cam.Lag,
		PropellerAngle: mgl64.RadToDeg(physics.AngleAbout(w.propellers[0].Rotation, physics.Forward)),
		Trace:          fmt.Sprintf("%016x", w.host.Trace()),
	}
}

func (w *World) Events() bus.EventBus { return w.events }

func (w *World) Course() *checkpoint.Course { return w.course }

func (w *World) Display() *TextDisplay { return w.display }

func (w *World) Close() error {
	for _, sub := range w.subs {
		if err := sub.Cancel(); err != nil {
			return err
		}
	}
	return w.course.Close()
}
