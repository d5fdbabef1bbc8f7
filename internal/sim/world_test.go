package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/flightrig/internal/checkpoint"
	"github.com/zeusync/flightrig/internal/config"
	"github.com/zeusync/flightrig/internal/core/events/bus"
	"github.com/zeusync/flightrig/internal/flight"
)

func throttleScript(seconds float64, in flight.InputSample) *Script {
	in.Throttle = 1
	return &Script{Segments: []Segment{{Duration: seconds, InputSample: in}}}
}

// threeRingSettings lays rings along the straight climb-out of an air start
// at (0, 10, 0): the first around the start, the second on the glide path at
// z = 5 and the third out of reach.
func threeRingSettings() config.Settings {
	s := config.Default()
	s.Checkpoint.DestroyDelay = 1
	s.Checkpoint.Rings = []config.RingSettings{
		{ID: "start", Position: []float64{0, 10, 0}, Radius: 1},
		{ID: "glide", Position: []float64{0, 9.55, 5}, Radius: 1.5},
		{ID: "far", Position: []float64{0, 10, 500}},
	}
	s.Sim.ReportInterval = 0.5
	return s
}

func TestWorldFliesThroughRings(t *testing.T) {
	settings := threeRingSettings()
	w, err := New(&settings, throttleScript(6, flight.InputSample{}), nil)
	require.NoError(t, err)
	defer w.Close()

	var passed []checkpoint.PassedData
	var destroyed []string
	_, err = w.Events().Subscribe(checkpoint.EventPassed, func(e bus.Event) error {
		passed = append(passed, e.Data().(checkpoint.PassedData))
		return nil
	})
	require.NoError(t, err)
	_, err = w.Events().Subscribe(checkpoint.EventDestroyed, func(e bus.Event) error {
		destroyed = append(destroyed, e.Data().(string))
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, w.Run(context.Background()))

	tm := w.Snapshot()
	assert.Equal(t, uint64(300), tm.FixedSteps)
	assert.InDelta(t, 3.0, tm.Speed, 1e-9)
	assert.InDelta(t, 9.03, tm.Position.Z(), 1e-6)
	assert.InDelta(t, 10-0.09*9.03, tm.Position.Y(), 1e-6)
	assert.False(t, tm.Grounded)

	assert.Equal(t, "2/3", tm.Progress)
	assert.Equal(t, 2, tm.Completed)
	assert.Equal(t, 3, tm.Total)
	assert.Equal(t, []string{"0/3", "1/3", "2/3"}, w.Display().History())
	assert.Equal(t, []checkpoint.PassedData{
		{ID: "start", Completed: 1, Total: 3},
		{ID: "glide", Completed: 2, Total: 3},
	}, passed)

	assert.Equal(t, []string{"start", "glide"}, destroyed)
	assert.Equal(t, 1, tm.RingsLeft)
	_, ok := w.Course().Ring("far")
	assert.True(t, ok)

	assert.InDelta(t, 1.1, tm.CameraDistance, 1e-9)
	assert.Zero(t, tm.CameraLag)
	assert.NotZero(t, tm.PropellerAngle)
}

func TestWorldRingsOutliveTheirPassForTheDelay(t *testing.T) {
	settings := threeRingSettings()
	w, err := New(&settings, throttleScript(6, flight.InputSample{}), nil)
	require.NoError(t, err)
	defer w.Close()

	for w.Snapshot().Completed == 0 {
		w.Step()
	}
	ring, ok := w.Course().Ring("start")
	require.True(t, ok)
	assert.True(t, ring.Pending())

	for w.Snapshot().Time < 0.9 {
		w.Step()
	}
	assert.False(t, ring.Destroyed())

	for w.Snapshot().Time < 1.1 {
		w.Step()
	}
	assert.True(t, ring.Destroyed())
	assert.Equal(t, "1/3", w.Snapshot().Progress)
}

func TestWorldGroundedTaxi(t *testing.T) {
	settings := config.Default()
	settings.Sim.StartPosition = []float64{0, 0, 0}
	settings.Checkpoint.Rings = nil

	w, err := New(&settings, throttleScript(2, flight.InputSample{YawRight: true, LookY: 1, LookX: 1}), nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Run(context.Background()))

	tm := w.Snapshot()
	assert.True(t, tm.Grounded)
	assert.Zero(t, tm.Position.Y(), "the host keeps the body on the ground")
	assert.InDelta(t, 1.0, tm.Speed, 1e-9)
	assert.Greater(t, tm.Position.X(), 0.0, "yaw still steers on the ground while throttling")
	assert.Equal(t, "0/0", tm.Progress)
	assert.Zero(t, tm.CameraLag, "pitch and roll stay zero on the ground")
}

func TestWorldRunCancelled(t *testing.T) {
	settings := config.Default()
	w, err := New(&settings, throttleScript(60, flight.InputSample{}), nil)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}

func TestNewRejectsInvalidInput(t *testing.T) {
	settings := config.Default()
	_, err := New(&settings, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidScript)

	settings.Flight.SpeedRampUp = 3
	_, err = New(&settings, throttleScript(1, flight.InputSample{}), nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = New(nil, throttleScript(1, flight.InputSample{}), nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDefaultCourseIsFlyable(t *testing.T) {
	settings := config.Default()
	w, err := New(&settings, DefaultScript(), nil)
	require.NoError(t, err)
	defer w.Close()

	finished := false
	_, err = w.Events().Subscribe(checkpoint.EventCompleted, func(bus.Event) error {
		finished = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, w.Run(context.Background()))
	assert.True(t, finished)
	assert.Equal(t, "5/5", w.Snapshot().Progress)
	assert.False(t, w.Snapshot().Grounded)
}
