// Package config loads the YAML configuration shared by the rope front ends.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/rope"
)

type Config struct {
	Spring   Spring   `yaml:"spring"`
	Viewport Viewport `yaml:"viewport"`
	Clock    Clock    `yaml:"clock"`
	Render   Render   `yaml:"render"`
	Input    Input    `yaml:"input"`
	Log      Log      `yaml:"log"`
}

type Spring struct {
	Mass      float64 `yaml:"mass"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

// Viewport describes the drawing area in pixels. The terminal front end
// treats each cell as a fixed block of pixels.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Margin is the horizontal inset of the anchors from the edges.
	Margin float64 `yaml:"margin"`
	// Sag is how far below the anchor line the control points rest.
	Sag float64 `yaml:"sag"`
}

type Clock struct {
	FPS         int `yaml:"fps"`
	MaxSubsteps int `yaml:"max_substeps"`
}

type Render struct {
	Samples      int `yaml:"samples"`
	TangentTicks int `yaml:"tangent_ticks"`
}

type Input struct {
	// DragWeight is how far the control point targets move toward the
	// pointer, from 0 (not at all) to 1 (onto the pointer).
	DragWeight float64 `yaml:"drag_weight"`
	// TiltGain converts a unit tilt into a target offset.
	TiltGain float64 `yaml:"tilt_gain"`
	// NoiseSpeed is the rate at which the synthetic tilt changes, in noise
	// units per second. Zero disables it.
	NoiseSpeed float64 `yaml:"noise_speed"`
	Seed       int64   `yaml:"seed"`
}

type Log struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Spring:   Spring{Mass: 1, Stiffness: 80, Damping: 14},
		Viewport: Viewport{Width: 800, Height: 600, Margin: 80, Sag: 60},
		Clock:    Clock{FPS: 60, MaxSubsteps: rope.DefaultMaxSteps},
		Render:   Render{Samples: 64, TangentTicks: 8},
		Input:    Input{DragWeight: 1, TiltGain: 120, NoiseSpeed: 0.25, Seed: 1},
		Log:      Log{Level: "info", Output: "stderr"},
	}
}

// Load decodes YAML from r on top of [Default] and validates the result.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile is like [Load] but reads from a file. An empty path returns
// [Default].
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// SpringParams returns the spring section as engine parameters.
func (c Config) SpringParams() rope.SpringParams {
	return rope.SpringParams{
		Mass:      c.Spring.Mass,
		Stiffness: c.Spring.Stiffness,
		Damping:   c.Spring.Damping,
	}
}

// Validate checks that the configuration describes a runnable, stable
// simulation.
func (c Config) Validate() error {
	params := c.SpringParams()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("spring: %w", err)
	}
	if c.Clock.FPS <= 0 {
		return fmt.Errorf("clock: fps must be positive, got %d", c.Clock.FPS)
	}
	if c.Clock.MaxSubsteps < 0 {
		return fmt.Errorf("clock: max_substeps must not be negative, got %d", c.Clock.MaxSubsteps)
	}
	if step, bound := 1/float64(c.Clock.FPS), params.StableStep(); step >= bound {
		return fmt.Errorf("clock: step of %gs at %d fps exceeds the spring's stability bound of %gs", step, c.Clock.FPS, bound)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport: size must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Viewport.Margin < 0 || 4*c.Viewport.Margin > c.Viewport.Width {
		return fmt.Errorf("viewport: margin %g exceeds a quarter of width %g", c.Viewport.Margin, c.Viewport.Width)
	}
	if c.Render.Samples < 1 {
		return fmt.Errorf("render: samples must be at least 1, got %d", c.Render.Samples)
	}
	if c.Render.TangentTicks < 0 {
		return fmt.Errorf("render: tangent_ticks must not be negative, got %d", c.Render.TangentTicks)
	}
	if c.Input.DragWeight < 0 || c.Input.DragWeight > 1 {
		return fmt.Errorf("input: drag_weight must be in [0, 1], got %g", c.Input.DragWeight)
	}
	if c.Input.NoiseSpeed < 0 {
		return fmt.Errorf("input: noise_speed must not be negative, got %g", c.Input.NoiseSpeed)
	}
	return nil
}
