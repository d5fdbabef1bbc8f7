package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestDerivedLoggersShareLevel(t *testing.T) {
	l := NewDevelopment(LevelInfo)
	child := l.Named("flight").With(String("aircraft", "a1"))

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, child.GetLevel())
	assert.Equal(t, "debug", child.GetLevel().String())
}

func TestNopLoggerAcceptsEveryFieldType(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("all fields",
			Any("any", struct{}{}),
			Bool("b", true),
			Float64("f", 1.5),
			Int("i", 2),
			Uint64("u", 3),
			String("s", "x"),
			Strings("ss", []string{"a"}),
			Error(errors.New("boom")),
		)
		l.Log(LevelError, "dropped")
	})
	assert.NotNil(t, Provide())
}
