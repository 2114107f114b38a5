// Package config loads the rig, engine and logging settings from yaml.
// Keys left out of the file keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-rig/engine/logger"
)

// Profile names the deployment flavour that picks the pan move speed.
type Profile string

const (
	// ProfileDevelopment pans with the slower speed tuned for a desktop mouse.
	ProfileDevelopment Profile = "development"
	// ProfileProduction pans with the faster speed tuned for touch screens.
	ProfileProduction Profile = "production"
)

// Config is the top-level document of a rig configuration file.
type Config struct {
	Profile Profile       `yaml:"profile"`
	Logging logger.Config `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Window  WindowConfig  `yaml:"window"`
	Rig     RigConfig     `yaml:"rig"`
}

// EngineConfig controls the tick loop and the scene step workers.
type EngineConfig struct {
	TickRate      time.Duration `yaml:"tick_rate"`
	Workers       int           `yaml:"workers"`
	ProfileEnable bool          `yaml:"profile"`
}

// WindowConfig sizes and titles the demo window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// MoveSpeed holds the pan speed per profile. Touch screens report far larger pixel deltas
// than a desktop mouse in the editor, hence the two values.
type MoveSpeed struct {
	Development float32 `yaml:"development"`
	Production  float32 `yaml:"production"`
}

// RigConfig is the immutable tuning of a camera rig.
type RigConfig struct {
	FollowDistance  float32 `yaml:"follow_distance"`
	FollowHeight    float32 `yaml:"follow_height"`
	HeightDamping   float32 `yaml:"height_damping"`
	RotationDamping float32 `yaml:"rotation_damping"`

	ZoomNear          float32 `yaml:"zoom_near"`
	ZoomFar           float32 `yaml:"zoom_far"`
	ZoomScreenToWorld float32 `yaml:"zoom_screen_to_world"`
	WheelMultiplier   float32 `yaml:"wheel_multiplier"`
	PinchThreshold    float32 `yaml:"pinch_threshold"`
	PinchNoise        float32 `yaml:"pinch_noise"`
	ZoomButtonStep    float32 `yaml:"zoom_button_step"`

	MoveSpeed MoveSpeed `yaml:"move_speed"`
}

// DefaultRig returns the stock rig tuning.
//
// Returns:
//   - RigConfig: follow distance 30, height 800, damping 2 / 3, zoom limits 100..4500
func DefaultRig() RigConfig {
	return RigConfig{
		FollowDistance:    30,
		FollowHeight:      800,
		HeightDamping:     2,
		RotationDamping:   3,
		ZoomNear:          100,
		ZoomFar:           4500,
		ZoomScreenToWorld: 25,
		WheelMultiplier:   6,
		PinchThreshold:    -0.7,
		PinchNoise:        2,
		ZoomButtonStep:    50,
		MoveSpeed: MoveSpeed{
			Development: 0.1,
			Production:  0.4,
		},
	}
}

// Default returns a complete configuration for the development profile.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Profile: ProfileDevelopment,
		Logging: logger.Config{Level: "info", Format: "console"},
		Engine: EngineConfig{
			TickRate: 16 * time.Millisecond,
			Workers:  4,
		},
		Window: WindowConfig{
			Title:  "oxy-rig",
			Width:  1280,
			Height: 720,
		},
		Rig: DefaultRig(),
	}
}

// Validate reports the first setting that would make the rig misbehave.
//
// Returns:
//   - error: nil if the configuration is usable
func (r RigConfig) Validate() error {
	switch {
	case r.ZoomNear >= r.ZoomFar:
		return fmt.Errorf("rig: zoom_near (%v) must be below zoom_far (%v)", r.ZoomNear, r.ZoomFar)
	case r.HeightDamping < 0 || r.RotationDamping < 0:
		return errors.New("rig: damping rates must not be negative")
	case r.FollowDistance < 0:
		return errors.New("rig: follow_distance must not be negative")
	case r.PinchThreshold < -1 || r.PinchThreshold > 1:
		return fmt.Errorf("rig: pinch_threshold (%v) must be a cosine in [-1, 1]", r.PinchThreshold)
	case r.PinchNoise < 0 || r.ZoomButtonStep < 0:
		return errors.New("rig: pinch_noise and zoom_button_step must not be negative")
	case r.MoveSpeed.Development <= 0 || r.MoveSpeed.Production <= 0:
		return errors.New("rig: move_speed values must be positive")
	}
	return nil
}

// MoveSpeedFor selects the pan speed of a profile. Unknown profiles use the production speed.
//
// Parameters:
//   - p: the deployment profile
//
// Returns:
//   - float32: world units per screen pixel
func (r RigConfig) MoveSpeedFor(p Profile) float32 {
	if p == ProfileDevelopment {
		return r.MoveSpeed.Development
	}
	return r.MoveSpeed.Production
}

// MoveSpeed returns the pan speed for the configured profile.
//
// Returns:
//   - float32: world units per screen pixel
func (c *Config) MoveSpeed() float32 {
	return c.Rig.MoveSpeedFor(c.Profile)
}

// Load reads a yaml file, applies defaults and validates the rig section.
//
// Parameters:
//   - path: path of the yaml file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: wrapped read, parse or validation error
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes yaml bytes on top of Default and validates the result.
// Keys left out of the document keep their default; keys present, zero included, are taken as written.
//
// Parameters:
//   - data: yaml document
//
// Returns:
//   - *Config: the decoded configuration
//   - error: parse or validation error
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the profile, engine and window sections, then the rig tuning.
//
// Returns:
//   - error: nil if the configuration is usable
func (c *Config) Validate() error {
	switch c.Profile {
	case ProfileDevelopment, ProfileProduction:
	default:
		return fmt.Errorf("unknown profile %q", c.Profile)
	}
	switch {
	case c.Engine.TickRate <= 0:
		return fmt.Errorf("engine: tick_rate (%v) must be positive", c.Engine.TickRate)
	case c.Engine.Workers < 1:
		return fmt.Errorf("engine: workers (%d) must be at least 1", c.Engine.Workers)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	return c.Rig.Validate()
}
