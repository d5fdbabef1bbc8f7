package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/flightrig/internal/flight"
)

func TestLoadScript(t *testing.T) {
	s, err := LoadScript(strings.NewReader(`
frame_delta: 0.01
segments:
  - duration: 1.5
    throttle: 1
  - duration: 0.5
    look_x: -0.25
    yaw_left: true
`))
	require.NoError(t, err)
	assert.Equal(t, 0.01, s.FrameDelta)
	require.Len(t, s.Segments, 2)
	assert.Equal(t, flight.InputSample{Throttle: 1}, s.Segments[0].InputSample)
	assert.Equal(t, flight.InputSample{LookX: -0.25, YawLeft: true}, s.Segments[1].InputSample)
	assert.InDelta(t, 2.0, s.Duration(), 1e-12)
}

func TestLoadScriptRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":         `segments: []`,
		"unknown field": "segments:\n  - duration: 1\n    boost: true\n",
		"zero duration": "segments:\n  - duration: 0\n",
		"axis range":    "segments:\n  - duration: 1\n    look_y: 2\n",
		"frame delta":   "frame_delta: -1\nsegments:\n  - duration: 1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScript(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}
}

func TestScriptInputReplaysSegments(t *testing.T) {
	in := NewScriptInput(&Script{Segments: []Segment{
		{Duration: 0.04, InputSample: flight.InputSample{Throttle: 1}},
		{Duration: 0.02, InputSample: flight.InputSample{YawRight: true}},
	}})

	var got []flight.InputSample
	for !in.Done() {
		in.FixedUpdate(0.02)
		got = append(got, in.Sample())
	}

	assert.Equal(t, []flight.InputSample{
		{Throttle: 1},
		{Throttle: 1},
		{YawRight: true},
	}, got)
	assert.InDelta(t, 0.06, in.Elapsed(), 1e-12)

	in.FixedUpdate(0.02)
	assert.Equal(t, flight.InputSample{}, in.Sample(), "past the end the sticks are released")
}
