package sim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/flightrig/internal/flight"
)

var ErrInvalidScript = errors.New("invalid input script")

// Segment holds one input sample for Duration seconds of simulated time.
type Segment struct {
	Duration           float64 `yaml:"duration"`
	flight.InputSample `yaml:",inline"`
}

// Script is a recorded sequence of player input.
type Script struct {
	// FrameDelta overrides the configured visual frame length when set.
	FrameDelta float64   `yaml:"frame_delta,omitempty"`
	Segments   []Segment `yaml:"segments"`
}

func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return LoadScript(f)
}

func (s *Script) Validate() error {
	if len(s.Segments) == 0 {
		return fmt.Errorf("%w: no segments", ErrInvalidScript)
	}
	if s.FrameDelta < 0 {
		return fmt.Errorf("%w: frame_delta = %v", ErrInvalidScript, s.FrameDelta)
	}
	var errs []error
	for i, seg := range s.Segments {
		if !(seg.Duration > 0) {
			errs = append(errs, fmt.Errorf("%w: segments[%d].duration = %v, want > 0", ErrInvalidScript, i, seg.Duration))
		}
		axes := []struct {
			name  string
			value float64
		}{
			{"throttle", seg.Throttle},
			{"look_x", seg.LookX},
			{"look_y", seg.LookY},
		}
		for _, axis := range axes {
			if math.IsNaN(axis.value) || math.Abs(axis.value) > 1 {
				errs = append(errs, fmt.Errorf("%w: segments[%d].%s = %v, want [-1, 1]", ErrInvalidScript, i, axis.name, axis.value))
			}
		}
	}
	return errors.Join(errs...)
}

// Duration is the total scripted time.
func (s *Script) Duration() float64 {
	total := 0.0
	for _, seg := range s.Segments {
		total += seg.Duration
	}
	return total
}

// DefaultScript holds full throttle for twenty seconds, which carries the
// stock aircraft through the default course.
func DefaultScript() *Script {
	return &Script{Segments: []Segment{
		{Duration: 20, InputSample: flight.InputSample{Throttle: 1}},
	}}
}
