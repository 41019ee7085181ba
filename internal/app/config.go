package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"cryptochat/internal/crypto"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string   `yaml:"home"`     // config directory, e.g. $HOME/.cryptochat
	Curve    string   `yaml:"curve"`    // key-agreement curve, e.g. P-521
	Salt     string   `yaml:"salt"`     // HKDF salt for session keys
	Roster   []string `yaml:"roster"`   // demo participants, in order
	LogLevel string   `yaml:"logLevel"` // logrus level name
	LogJSON  bool     `yaml:"logJSON"`
}

// DefaultRoster is the demo cast used when none is configured.
var DefaultRoster = []string{"Bob", "Alice", "Eve", "Julia"}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Curve:    crypto.DefaultCurve,
		Salt:     string(crypto.DefaultSalt),
		Roster:   append([]string(nil), DefaultRoster...),
		LogLevel: logrus.WarnLevel.String(),
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path, or a path
// that does not exist, yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := crypto.ParseCurve(c.Curve); err != nil {
		return fmt.Errorf("curve: %w (want one of %s)", err, strings.Join(crypto.CurveNames(), ", "))
	}
	if c.Salt == "" {
		return errors.New("salt must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}
	seen := make(map[string]bool, len(c.Roster))
	for _, name := range c.Roster {
		if name == "" {
			return errors.New("roster: empty name")
		}
		if seen[name] {
			return fmt.Errorf("roster: duplicate name %q", name)
		}
		seen[name] = true
	}
	return nil
}

// NewLogger builds a logger from the level and format settings.
func (c Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	if c.LogJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}
