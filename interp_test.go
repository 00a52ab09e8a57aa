package sprig

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestEaseInOut(t *testing.T) {
	e := EaseInOut{Exponent: 2}
	got := e.Interpolate(10, 0, 0.25)
	if got != 5 {
		t.Errorf("Interpolate(10, 0, 0.25) = %v, want 5", got)
	}
	if DefaultEaseInOut.Exponent != 2 {
		t.Errorf("default exponent = %v, want 2", DefaultEaseInOut.Exponent)
	}
}

func TestTargetValueConverges(t *testing.T) {
	v, err := NewTargetValue(DefaultEaseInOut)
	if err != nil {
		t.Fatal(err)
	}
	v.Target = 100
	for range 600 {
		v.Tick(1.0 / 60)
	}
	if !ApproxEqual(v.Current, 100, DefaultTolerance) {
		t.Errorf("Current = %v after 10s, want ~100", v.Current)
	}
}

func TestTargetValueNilInterpolator(t *testing.T) {
	if _, err := NewTargetValue(nil); !errors.Is(err, ErrNilInterpolator) {
		t.Errorf("NewTargetValue(nil) err = %v", err)
	}
	v, _ := NewTargetValue(DefaultEaseInOut)
	if err := v.SetInterpolator(nil); !errors.Is(err, ErrNilInterpolator) {
		t.Errorf("SetInterpolator(nil) err = %v", err)
	}
	if v.Interpolator() == nil {
		t.Error("rejected SetInterpolator cleared the interpolator")
	}
}

func TestTargetValueForceToTarget(t *testing.T) {
	v, _ := NewTargetValue(DefaultEaseInOut)
	v.Current, v.Target = 3, 42
	v.ForceToTarget()
	if v.Current != 42 {
		t.Errorf("Current = %v, want 42", v.Current)
	}
}

func TestTweenInterpolator(t *testing.T) {
	tw := NewTweenInterpolator(1, ease.Linear)
	v, err := NewTargetValue(tw)
	if err != nil {
		t.Fatal(err)
	}
	v.Target = 10

	v.Tick(0.5)
	if math.Abs(v.Current-5) > 1e-4 {
		t.Errorf("halfway = %v, want 5", v.Current)
	}
	v.Tick(0.5)
	if v.Current != 10 {
		t.Errorf("finished = %v, want exactly 10", v.Current)
	}

	// A new target restarts the tween from the current value.
	v.Target = 20
	v.Tick(0.25)
	if math.Abs(v.Current-12.5) > 1e-4 {
		t.Errorf("restarted = %v, want 12.5", v.Current)
	}
}

func TestTweenInterpolatorDefaults(t *testing.T) {
	if got := NewTweenInterpolator(0, nil).Interpolate(1, 9, 0.1); got != 9 {
		t.Errorf("zero duration = %v, want target", got)
	}
	// nil ease falls back to linear.
	got := NewTweenInterpolator(2, nil).Interpolate(0, 4, 1)
	if math.Abs(got-2) > 1e-4 {
		t.Errorf("nil ease = %v, want 2", got)
	}
}

func TestInterpolationWeight(t *testing.T) {
	tests := []struct {
		param, dt, want float64
	}{
		{2, 0.25, 0.5},
		{10, 1, 1},
		{-1, 1, 0},
	}
	for _, tt := range tests {
		if got := InterpolationWeight(tt.param, tt.dt); got != tt.want {
			t.Errorf("InterpolationWeight(%v, %v) = %v, want %v", tt.param, tt.dt, got, tt.want)
		}
	}
}
