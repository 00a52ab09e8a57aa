package sprig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MoverConfig describes a mover and how it is driven. It is usually loaded
// from YAML:
//
//	x: 5
//	y: 5
//	heading: south
//	reaction: bounce
//	cells_per_second: 8
//	bounds:
//	  width: 10
//	  height: 10
type MoverConfig struct {
	X              int               `yaml:"x"`
	Y              int               `yaml:"y"`
	Heading        CardinalDirection `yaml:"heading"`
	Reaction       BoundsReaction    `yaml:"reaction"`
	CellsPerSecond float64           `yaml:"cells_per_second"`
	Bounds         RectI             `yaml:"bounds"`
}

// LoadMoverConfig decodes a MoverConfig from YAML. Unknown fields are
// rejected and the result is validated.
func LoadMoverConfig(r io.Reader) (MoverConfig, error) {
	var cfg MoverConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return MoverConfig{}, fmt.Errorf("parse mover config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return MoverConfig{}, err
	}
	return cfg, nil
}

// LoadMoverConfigFile reads and decodes the YAML file at path.
func LoadMoverConfigFile(path string) (MoverConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return MoverConfig{}, fmt.Errorf("open mover config: %w", err)
	}
	defer f.Close()
	return LoadMoverConfig(f)
}

// Validate reports a config whose bounds are empty or whose rate is negative.
func (c MoverConfig) Validate() error {
	var errs []error
	if c.Bounds.Width <= 0 || c.Bounds.Height <= 0 {
		errs = append(errs, fmt.Errorf("mover config: bounds %dx%d must be positive", c.Bounds.Width, c.Bounds.Height))
	}
	if c.CellsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("mover config: cells_per_second %v is negative", c.CellsPerSecond))
	}
	if !c.Heading.Valid() {
		errs = append(errs, fmt.Errorf("mover config: %w: %d", ErrInvalidHeading, uint8(c.Heading)))
	}
	return errors.Join(errs...)
}

// Mover returns a mover spawned at the configured cell and heading.
func (c MoverConfig) Mover() Mover {
	return NewMover(c.X, c.Y, c.Heading)
}

// Ticker returns a MoverTicker driving m with the configured bounds,
// reaction and rate.
func (c MoverConfig) Ticker(m *Mover) *MoverTicker {
	return NewMoverTicker(m, c.Bounds, c.Reaction, c.CellsPerSecond)
}

// MarshalYAML encodes the heading by name.
func (d CardinalDirection) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeading, uint8(d))
	}
	return d.String(), nil
}

// UnmarshalYAML accepts a heading name or its index 0..7.
func (d *CardinalDirection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", value.Line, ErrInvalidHeading)
	}
	if n, err := strconv.Atoi(value.Value); err == nil {
		if n < 0 || n >= len(CardinalDirections) {
			return fmt.Errorf("line %d: %w: %d", value.Line, ErrInvalidHeading, n)
		}
		*d = CardinalDirection(n)
		return nil
	}
	parsed, err := ParseCardinalDirection(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the reaction by name.
func (r BoundsReaction) MarshalYAML() (any, error) {
	if int(r) >= len(reactionNames) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidReaction, uint8(r))
	}
	return r.String(), nil
}

// UnmarshalYAML accepts a reaction name.
func (r *BoundsReaction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", value.Line, ErrInvalidReaction)
	}
	parsed, err := ParseBoundsReaction(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = parsed
	return nil
}
