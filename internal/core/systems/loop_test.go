package systems

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name   string
	trace  *[]string
	fixed  []float64
	frames []float64
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) FixedUpdate(dt float64) {
	r.fixed = append(r.fixed, dt)
	*r.trace = append(*r.trace, r.name+".fixed")
}

func (r *recorder) Update(dt float64) {
	r.frames = append(r.frames, dt)
	*r.trace = append(*r.trace, r.name+".update")
}

func newLoop(t *testing.T, cfg LoopConfig) *Loop {
	t.Helper()
	l, err := NewLoop(cfg, nil)
	require.NoError(t, err)
	return l
}

func TestNewLoopValidation(t *testing.T) {
	_, err := NewLoop(LoopConfig{}, nil)
	assert.ErrorIs(t, err, ErrInvalidStep)

	l := newLoop(t, LoopConfig{FixedStep: 0.01})
	assert.Equal(t, DefaultLoopConfig().MaxDeltaTime, l.Config().MaxDeltaTime)
	assert.Equal(t, DefaultLoopConfig().MaxStepsPerFrame, l.Config().MaxStepsPerFrame)
}

func TestLoopOrdersByPriority(t *testing.T) {
	var trace []string
	l := newLoop(t, LoopConfig{FixedStep: 0.5, MaxDeltaTime: 1})
	camera := &recorder{name: "camera", trace: &trace}
	input := &recorder{name: "input", trace: &trace}
	flight := &recorder{name: "flight", trace: &trace}
	l.Register(camera, PriorityLow)
	l.Register(flight, PriorityHigh)
	l.Register(input, PriorityHighest)

	assert.Equal(t, []string{"input", "flight", "camera"}, l.Systems())

	l.Step(0.5)
	assert.Equal(t, []string{
		"input.fixed", "flight.fixed", "camera.fixed",
		"input.update", "flight.update", "camera.update",
	}, trace)
}

func TestLoopAccumulatesFixedSteps(t *testing.T) {
	var trace []string
	l := newLoop(t, LoopConfig{FixedStep: 0.25, MaxDeltaTime: 1})
	r := &recorder{name: "r", trace: &trace}
	l.Register(r, PriorityNormal)

	l.Step(0.1)
	assert.Empty(t, r.fixed)
	l.Step(0.2)
	assert.Len(t, r.fixed, 1)
	l.Step(0.5)
	assert.Len(t, r.fixed, 3)
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, r.fixed)
	assert.Equal(t, []float64{0.1, 0.2, 0.5}, r.frames)

	stats := l.Stats()
	assert.Equal(t, uint64(3), stats.Frames)
	assert.Equal(t, uint64(3), stats.FixedSteps)
	assert.InDelta(t, 0.8, stats.Time, 1e-12)
}

func TestLoopClampsFrameDelta(t *testing.T) {
	var trace []string
	l := newLoop(t, LoopConfig{FixedStep: 0.02, MaxDeltaTime: 0.06, MaxStepsPerFrame: 8})
	r := &recorder{name: "r", trace: &trace}
	l.Register(r, PriorityNormal)

	l.Step(1.0)
	assert.Equal(t, []float64{0.06}, r.frames)
	assert.Len(t, r.fixed, 3)
	assert.InDelta(t, 0.94, l.Stats().DroppedTime, 1e-9)

	l.Step(-1)
	assert.Equal(t, 0.0, r.frames[1])
}

func TestLoopStepLimit(t *testing.T) {
	var trace []string
	l := newLoop(t, LoopConfig{FixedStep: 0.01, MaxDeltaTime: 1, MaxStepsPerFrame: 2})
	r := &recorder{name: "r", trace: &trace}
	l.Register(r, PriorityNormal)

	l.Step(0.05)
	assert.Len(t, r.fixed, 2)
	assert.InDelta(t, 0.03, l.Stats().DroppedTime, 1e-9)
}

func TestLoopAdvancesTimers(t *testing.T) {
	l := newLoop(t, LoopConfig{FixedStep: 0.1, MaxDeltaTime: 1})
	fired := 0
	l.Timers().After(0.25, func() { fired++ })

	l.Step(0.1)
	l.Step(0.1)
	assert.Equal(t, 0, fired)
	l.Step(0.1)
	assert.Equal(t, 1, fired)
	l.Step(0.1)
	assert.Equal(t, 1, fired)
}

func TestLoopRun(t *testing.T) {
	var trace []string
	l := newLoop(t, LoopConfig{FixedStep: 0.1, MaxDeltaTime: 1})
	r := &recorder{name: "r", trace: &trace}
	l.Register(r, PriorityNormal)

	err := l.Run(context.Background(), 0.1, func() bool { return len(r.frames) == 4 })
	require.NoError(t, err)
	assert.Equal(t, uint64(4), l.Stats().Frames)

	assert.ErrorIs(t, l.Run(context.Background(), 0, nil), ErrInvalidFrame)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Run(ctx, 0.1, nil), context.Canceled)
}
