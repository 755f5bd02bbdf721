package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrUnsupportedConfig is returned for config files that are neither JSON nor TOML.
var ErrUnsupportedConfig = errors.New("unsupported config file type")

//go:embed config.schema.json
var configSchema string

const usage = `Usage: %s [config_file]

The optional argument is the path to a .json or .toml config file.
Without it the simulation runs with the default parameters.
`

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth" toml:"worldWidth"`
	WorldHeight float64 `json:"worldHeight" toml:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids" toml:"numBoids"`

	// Boids rules
	MaxVelocity    float64 `json:"maxVelocity" toml:"maxVelocity"`
	MinDistance    float64 `json:"minDistance" toml:"minDistance"`       // Separation radius
	CentreFactor   float64 `json:"centreFactor" toml:"centreFactor"`     // Cohesion divisor
	VelocityFactor float64 `json:"velocityFactor" toml:"velocityFactor"` // Alignment divisor

	// Host loop
	DrawRadius int     `json:"drawRadius" toml:"drawRadius"`
	TickDelay  float64 `json:"tickDelay" toml:"tickDelay"` // seconds

	LogLevel string `json:"logLevel" toml:"logLevel"`
	LogFile  string `json:"logFile" toml:"logFile"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:     800,
		WorldHeight:    800,
		NumBoids:       40,
		MaxVelocity:    5.0,
		MinDistance:    30.0,
		CentreFactor:   1000.0,
		VelocityFactor: 16.0,
		DrawRadius:     5,
		TickDelay:      0.05,
		LogLevel:       "info",
	}
}

// ConfigFromArgs returns the default config when args is empty, or loads
// the single config file it names.
func ConfigFromArgs(program string, args []string) (*Config, error) {
	switch len(args) {
	case 0:
		return DefaultConfig(), nil
	case 1:
		return LoadConfig(args[0])
	default:
		return nil, fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n"+usage, len(args), program)
	}
}

// LoadConfig reads a JSON or TOML file over the defaults and validates it
// against the embedded JSON schema.
func LoadConfig(configFile string) (*Config, error) {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(configFile)); ext {
	case ".json":
		b, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		var v interface{}
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("failed to decode config json: %w", err)
		}
		if err := sch.Validate(v); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}

	case ".toml":
		md, err := toml.DecodeFile(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config validation failed: unknown keys %v", undecoded)
		}
		// Same schema for both formats: go through the JSON form of the result.
		b, err := json.Marshal(cfg)
		if err != nil {
			return nil, err
		}
		var v interface{}
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, err
		}
		if err := sch.Validate(v); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the constraints the simulation relies on.
func (c *Config) Validate() error {
	var errs []error
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		errs = append(errs, fmt.Errorf("world must have a positive size, got %vx%v", c.WorldWidth, c.WorldHeight))
	}
	if c.NumBoids < 2 {
		errs = append(errs, fmt.Errorf("numBoids=%d: %w", c.NumBoids, behavior.ErrFlockTooSmall))
	}
	if c.MaxVelocity <= 0 {
		errs = append(errs, fmt.Errorf("maxVelocity must be positive, got %v", c.MaxVelocity))
	}
	if c.MinDistance < 0 {
		errs = append(errs, fmt.Errorf("minDistance must not be negative, got %v", c.MinDistance))
	}
	if c.CentreFactor <= 0 || c.VelocityFactor <= 0 {
		errs = append(errs, fmt.Errorf("centreFactor and velocityFactor must be positive, got %v and %v", c.CentreFactor, c.VelocityFactor))
	}
	if c.DrawRadius < 0 {
		errs = append(errs, fmt.Errorf("drawRadius must not be negative, got %d", c.DrawRadius))
	}
	if c.TickDelay < 0 {
		errs = append(errs, fmt.Errorf("tickDelay must not be negative, got %v", c.TickDelay))
	}
	return errors.Join(errs...)
}

// Bounds returns the arena size.
func (c *Config) Bounds() behavior.Bounds {
	return behavior.Bounds{X: c.WorldWidth, Y: c.WorldHeight}
}

// Settings returns the physics constants handed to behavior.Tick.
func (c *Config) Settings() behavior.Settings {
	return behavior.Settings{
		Bounds:         c.Bounds(),
		MaxVelocity:    c.MaxVelocity,
		MinDistance:    c.MinDistance,
		CentreFactor:   c.CentreFactor,
		VelocityFactor: c.VelocityFactor,
	}
}

// TickDelayDuration returns TickDelay as a time.Duration.
func (c *Config) TickDelayDuration() time.Duration {
	return time.Duration(math.Round(c.TickDelay * float64(time.Second)))
}

// TicksPerSecond is the tick rate matching TickDelay, at least 1.
func (c *Config) TicksPerSecond() int {
	if c.TickDelay <= 0 {
		return 60 // ebiten's default rate
	}
	return max(1, int(math.Round(1/c.TickDelay)))
}

// NewFlock creates the initial random flock from rng.
func (c *Config) NewFlock(rng *rand.Rand) (behavior.Flock, error) {
	return behavior.NewRandomFlock(rng, c.Bounds(), c.MaxVelocity, c.NumBoids)
}
