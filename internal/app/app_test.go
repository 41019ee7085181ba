package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptochat/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "P-521", cfg.Curve)
	assert.Equal(t, "SALT", cfg.Salt)
	assert.Equal(t, DefaultRoster, cfg.Roster)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cryptochat.yaml")
	data := []byte("curve: X25519\nsalt: pepper\nroster: [Ann, Ben]\nlogLevel: debug\nlogJSON: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "X25519", cfg.Curve)
	assert.Equal(t, "pepper", cfg.Salt)
	assert.Equal(t, []string{"Ann", "Ben"}, cfg.Roster)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"curve":     "curve: P-192\n",
		"salt":      "salt: \"\"\n",
		"level":     "logLevel: loud\n",
		"duplicate": "roster: [Ann, Ann]\n",
		"yaml":      "roster: [unterminated\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogJSON = true

	l, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestNewWire_DemoRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curve = "P-256"
	cfg.Home = t.TempDir()

	w, err := NewWire(cfg)
	require.NoError(t, err)
	require.NotNil(t, w.SigningKey)

	cast, err := w.Roster()
	require.NoError(t, err)
	require.Len(t, cast, 4)
	bob, alice := cast[0], cast[1]

	require.NoError(t, alice.Chat(bob).Send(context.Background(), "hello"))
	assert.Equal(t,
		[]domain.Entry{{From: "Alice", Text: "hello"}},
		bob.Chat(alice).Messages(),
	)
	assert.Equal(t, 4, w.Directory.Len())
	assert.EqualValues(t, 1, w.Bus.Stats().Delivered)
}

func TestNewWire_NoHome(t *testing.T) {
	w, err := NewWire(DefaultConfig())
	require.NoError(t, err)
	assert.Nil(t, w.SigningKey)
}

func TestNewWire_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curve = "bogus"
	_, err := NewWire(cfg)
	assert.Error(t, err)
}

func TestNewWire_LeavesStandardLoggerAlone(t *testing.T) {
	std := logrus.StandardLogger()
	level, formatter := std.GetLevel(), std.Formatter

	cfg := DefaultConfig()
	cfg.LogLevel = "trace"
	cfg.LogJSON = true
	w, err := NewWire(cfg)
	require.NoError(t, err)

	assert.Equal(t, logrus.TraceLevel, w.Logger.GetLevel())
	assert.Equal(t, level, std.GetLevel())
	assert.Same(t, formatter, std.Formatter)
}
