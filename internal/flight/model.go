package flight

import (
	"github.com/zeusync/flightrig/internal/core/observability/log"
	"github.com/zeusync/flightrig/internal/core/physics"
	"github.com/zeusync/flightrig/internal/core/systems"
)

var _ systems.System = (*Model)(nil)

// Model turns player input into the velocity and orientation of one
// aircraft body and spins its propellers.
type Model struct {
	config     Config
	props      PropellerConfig
	body       physics.RigidBody
	ground     physics.Raycaster
	input      InputSource
	propellers [2]*physics.Transform
	state      State
	logger     log.Log
}

type Option func(*Model)

func WithLogger(logger log.Log) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithInput sets the source sampled on every FixedUpdate.
func WithInput(src InputSource) Option {
	return func(m *Model) { m.input = src }
}

// WithGround sets the colliders used by the ground check. Without them the
// aircraft is always airborne.
func WithGround(ground physics.Raycaster) Option {
	return func(m *Model) { m.ground = ground }
}

// WithPropellers attaches up to two propeller transforms. second may be nil.
func WithPropellers(cfg PropellerConfig, first, second *physics.Transform) Option {
	return func(m *Model) {
		m.props = cfg
		m.propellers = [2]*physics.Transform{first, second}
	}
}

func NewModel(config Config, body physics.RigidBody, opts ...Option) *Model {
	m := &Model{
		config: config,
		body:   body,
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.Named("flight")
	return m
}

func (m *Model) Name() string { return "flight" }

func (m *Model) FixedUpdate(dt float64) {
	var in InputSample
	if m.input != nil {
		in = m.input.Sample()
	}
	m.Tick(dt, in)
}

// Tick runs one physics tick: ground check, speed, velocity, then attitude.
// The velocity uses the orientation from before this tick's rotation.
func (m *Model) Tick(dt float64, in InputSample) {
	if m.body == nil {
		return
	}

	wasGrounded := m.state.Grounded
	m.state.Grounded = m.checkGround()
	if wasGrounded != m.state.Grounded {
		m.logger.Info("ground contact changed",
			log.Bool("grounded", m.state.Grounded),
			log.Float64("speed", m.state.CurrentSpeed),
		)
	}

	rotation := Advance(&m.state, m.config, in, dt)

	direction := physics.TransformDirection(m.body, FlightDirection(m.config))
	m.body.SetVelocity(direction.Mul(m.state.CurrentSpeed))
	m.body.SetRotation(physics.Compose(m.body.Rotation(), rotation))

	m.logger.Debug("physics tick",
		log.Float64("dt", dt),
		log.Float64("speed", m.state.CurrentSpeed),
		log.Float64("pitch", m.state.Pitch),
		log.Float64("yaw", m.state.Yaw),
		log.Float64("roll", m.state.Roll),
	)
}

// Update spins the propellers. The increment does not scale with dt.
func (m *Model) Update(float64) {
	if m.props.Count <= 0 || m.propellers[0] == nil {
		return
	}
	increment := physics.Euler(0, 0, PropellerIncrement(m.state.CurrentSpeed, m.props.SpeedCap))
	if m.props.Count == 2 && m.propellers[1] != nil {
		m.propellers[1].Rotate(increment)
	}
	m.propellers[0].Rotate(increment)
}

func (m *Model) checkGround() bool {
	if m.ground == nil {
		return false
	}
	ray := physics.Ray{
		Origin:    m.body.Position(),
		Direction: physics.TransformDirection(m.body, physics.Down),
	}
	_, hit := m.ground.Raycast(ray, m.config.GroundCheckDistance)
	return hit
}

func (m *Model) State() State            { return m.state }
func (m *Model) Config() Config          { return m.config }
func (m *Model) CurrentSpeed() float64   { return m.state.CurrentSpeed }
func (m *Model) Roll() float64           { return m.state.Roll }
func (m *Model) Grounded() bool          { return m.state.Grounded }
func (m *Model) MaxSpeed() float64       { return m.config.MaxSpeed }
func (m *Model) Body() physics.RigidBody { return m.body }
