package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. FLIGHTRIG_FLIGHT_MAX_SPEED.
const EnvPrefix = "FLIGHTRIG"

// Load reads defaults, then the YAML file at path (if any), then
// environment overrides, and validates the result.
func Load(path string) (*Settings, error) {
	v, err := newViper(path, true)
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Set changes one key of the config file at path and writes the file back.
// A missing file starts from the defaults. The value is parsed as YAML, so
// "12", "true" and "[0, 10, 0]" keep their types.
func Set(path, key, value string) (*Settings, error) {
	source := path
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		source = ""
	}
	v, err := newViper(source, false)
	if err != nil {
		return nil, err
	}

	key = strings.ToLower(strings.TrimSpace(key))
	if !lo.Contains(v.AllKeys(), key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		return nil, fmt.Errorf("parse value for %s: %w", key, err)
	}
	v.Set(key, parsed)

	s, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := Save(path, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes s as YAML.
func Save(path string, s *Settings) error {
	data, err := s.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (s *Settings) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Keys lists every settable key in sorted order.
func Keys() ([]string, error) {
	v, err := newViper("", false)
	if err != nil {
		return nil, err
	}
	keys := v.AllKeys()
	slices.Sort(keys)
	return keys, nil
}

func newViper(path string, env bool) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if env {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	defaults := Default()
	raw, err := defaults.YAML()
	if err != nil {
		return nil, err
	}
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

func decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
