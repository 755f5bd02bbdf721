package simulation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, behavior.Settings{
		Bounds:         behavior.Bounds{X: 800, Y: 800},
		MaxVelocity:    5.0,
		MinDistance:    30.0,
		CentreFactor:   1000.0,
		VelocityFactor: 16.0,
	}, cfg.Settings())
	assert.Equal(t, 40, cfg.NumBoids)
	assert.Equal(t, 5, cfg.DrawRadius)
	assert.Equal(t, 50*time.Millisecond, cfg.TickDelayDuration())
	assert.Equal(t, 20, cfg.TicksPerSecond())
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "boids.json", `{"numBoids": 100, "minDistance": 12.5, "logLevel": "debug"}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.NumBoids)
	assert.Equal(t, 12.5, cfg.MinDistance)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, 1000.0, cfg.CentreFactor)
	assert.Equal(t, 800.0, cfg.WorldWidth)
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "boids.toml", "worldWidth = 1024.0\nnumBoids = 8\ntickDelay = 0.1\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.WorldWidth)
	assert.Equal(t, 8, cfg.NumBoids)
	assert.Equal(t, 100*time.Millisecond, cfg.TickDelayDuration())
	assert.Equal(t, 800.0, cfg.WorldHeight)
}

func TestLoadConfig_TOMLIntegerLiterals(t *testing.T) {
	content := "worldWidth = 1024\nworldHeight = 600\nmaxVelocity = 3\ncentreFactor = 500\ntickDelay = 1\n"
	path := writeFile(t, "boids.toml", content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.WorldWidth)
	assert.Equal(t, 600.0, cfg.WorldHeight)
	assert.Equal(t, 3.0, cfg.MaxVelocity)
	assert.Equal(t, 500.0, cfg.CentreFactor)
	assert.Equal(t, time.Second, cfg.TickDelayDuration())
	assert.Equal(t, behavior.Bounds{X: 1024, Y: 600}, cfg.Bounds())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json single boid", "a.json", `{"numBoids": 1}`},
		{"json unknown key", "b.json", `{"numBirds": 10}`},
		{"json wrong type", "c.json", `{"maxVelocity": "fast"}`},
		{"json zero factor", "d.json", `{"centreFactor": 0}`},
		{"json bad level", "e.json", `{"logLevel": "chatty"}`},
		{"json syntax", "f.json", `{"numBoids": `},
		{"toml single boid", "g.toml", "numBoids = 1\n"},
		{"toml unknown key", "h.toml", "numBirds = 10\n"},
		{"toml negative distance", "i.toml", "minDistance = -1.0\n"},
		{"toml fractional boid count", "j.toml", "numBoids = 8.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_Unsupported(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "boids.yaml", "numBoids: 3\n"))
	assert.ErrorIs(t, err, ErrUnsupportedConfig)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFromArgs(t *testing.T) {
	cfg, err := ConfigFromArgs("boids", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := writeFile(t, "boids.json", `{"numBoids": 3}`)
	cfg, err = ConfigFromArgs("boids", []string{path})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.NumBoids)

	_, err = ConfigFromArgs("boids", []string{"a", "b"})
	assert.ErrorContains(t, err, "Usage: boids")
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumBoids = 1
	cfg.WorldWidth = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, behavior.ErrFlockTooSmall)
	assert.ErrorContains(t, err, "positive size")
}
