package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/flightrig/internal/config"
	"github.com/zeusync/flightrig/internal/flight"
)

func TestRunBatchIsDeterministic(t *testing.T) {
	settings := config.Default()
	straight := throttleScript(3, flight.InputSample{})
	banking := throttleScript(3, flight.InputSample{LookX: 0.5})

	out, err := RunBatch(context.Background(), &settings, []*Script{straight, banking, straight}, 2, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, out[0], out[2], "the same script flies the same path")
	assert.NotEqual(t, out[0].Trace, out[1].Trace)
	assert.Len(t, out[0].Trace, 16)
	assert.InDelta(t, 1.5, out[1].Speed, 1e-9)
}

func TestRunBatchReportsInvalidScripts(t *testing.T) {
	settings := config.Default()
	_, err := RunBatch(context.Background(), &settings, []*Script{
		throttleScript(1, flight.InputSample{}),
		{},
	}, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestRunBatchCancelledReportsProgress(t *testing.T) {
	settings := config.Default()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := RunBatch(ctx, &settings, []*Script{
		throttleScript(1, flight.InputSample{}),
		throttleScript(1, flight.InputSample{}),
	}, 1, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, tm := range out {
		assert.Zero(t, tm.Frames)
		assert.Equal(t, "0/5", tm.Progress)
	}
}
