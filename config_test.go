package sprig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const sampleConfig = `
x: 5
y: 5
heading: south
reaction: bounce
cells_per_second: 8
bounds:
  width: 10
  height: 10
`

func TestLoadMoverConfig(t *testing.T) {
	cfg, err := LoadMoverConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	want := MoverConfig{
		X: 5, Y: 5,
		Heading:        South,
		Reaction:       ReactionBounce,
		CellsPerSecond: 8,
		Bounds:         RectI{Width: 10, Height: 10},
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}

	m := cfg.Mover()
	if m.Position() != (Point{5, 5}) || m.Initial() != (Point{5, 5}) || m.Heading != South {
		t.Errorf("Mover = %+v", m)
	}
	mt := cfg.Ticker(&m)
	if mt.Bounds != cfg.Bounds || mt.Reaction != ReactionBounce || mt.timer.Target != 0.125 {
		t.Errorf("Ticker = %+v", mt)
	}
}

func TestLoadMoverConfigHeadingForms(t *testing.T) {
	tests := []struct {
		raw  string
		want CardinalDirection
	}{
		{"north_west", NorthWest},
		{"NorthEast", NorthEast},
		{"6", East},
		{"0", North},
	}
	for _, tt := range tests {
		src := "heading: " + tt.raw + "\nbounds: {width: 1, height: 1}\n"
		cfg, err := LoadMoverConfig(strings.NewReader(src))
		if err != nil {
			t.Errorf("heading %q: %v", tt.raw, err)
			continue
		}
		if cfg.Heading != tt.want {
			t.Errorf("heading %q = %v, want %v", tt.raw, cfg.Heading, tt.want)
		}
	}
}

func TestLoadMoverConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
	}{
		{"bad heading", "heading: up\nbounds: {width: 1, height: 1}\n", ErrInvalidHeading},
		{"heading index", "heading: 8\nbounds: {width: 1, height: 1}\n", ErrInvalidHeading},
		{"heading list", "heading: [1]\nbounds: {width: 1, height: 1}\n", ErrInvalidHeading},
		{"bad reaction", "reaction: wrap\nbounds: {width: 1, height: 1}\n", ErrInvalidReaction},
		{"unknown field", "speed: 3\nbounds: {width: 1, height: 1}\n", nil},
		{"empty bounds", "x: 1\n", nil},
		{"negative rate", "cells_per_second: -1\nbounds: {width: 1, height: 1}\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMoverConfig(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestMoverConfigValidateJoinsErrors(t *testing.T) {
	cfg := MoverConfig{Heading: CardinalDirection(12), CellsPerSecond: -2}
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidHeading) {
		t.Errorf("err = %v, want ErrInvalidHeading among the joined errors", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "bounds") || !strings.Contains(msg, "cells_per_second") {
		t.Errorf("missing problems in %q", msg)
	}
}

func TestMoverConfigMarshalYAML(t *testing.T) {
	cfg := MoverConfig{
		X: 1, Y: 2,
		Heading:  SouthWest,
		Reaction: ReactionResetAndChangeDirection,
		Bounds:   RectI{Width: 4, Height: 4},
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "heading: SouthWest") || !strings.Contains(s, "reaction: reset_and_change_direction") {
		t.Errorf("marshalled:\n%s", s)
	}

	back, err := LoadMoverConfig(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	if back != cfg {
		t.Errorf("reloaded %+v, want %+v", back, cfg)
	}

	if _, err := yaml.Marshal(MoverConfig{Heading: CardinalDirection(9)}); err == nil {
		t.Error("marshalling an invalid heading should fail")
	}
}

func TestLoadMoverConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mover.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadMoverConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Reaction != ReactionBounce {
		t.Errorf("Reaction = %v", cfg.Reaction)
	}

	if _, err := LoadMoverConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}
