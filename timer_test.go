package sprig

import (
	"math"
	"testing"
	"time"
)

func TestValueTimer(t *testing.T) {
	timer := NewValueTimer(1)
	timer.Add(0.5)
	timer.Add(0.5)
	if timer.IsElapsed() {
		t.Error("timer at exactly its target should not be elapsed")
	}
	if _, ok := timer.Overtime(); ok {
		t.Error("Overtime reported ok before elapsing")
	}

	timer.Add(0.25)
	if !timer.IsElapsed() {
		t.Fatal("timer past its target should be elapsed")
	}
	over, ok := timer.Overtime()
	if !ok || over != 0.25 {
		t.Errorf("Overtime = %v, %v; want 0.25, true", over, ok)
	}
	d, _ := timer.OvertimeDuration()
	if d != 250*time.Millisecond {
		t.Errorf("OvertimeDuration = %v", d)
	}
	if timer.Elapsed() != 1250*time.Millisecond {
		t.Errorf("Elapsed = %v", timer.Elapsed())
	}

	timer.Reset()
	if timer.Accumulated != 0 || timer.Target != 1 {
		t.Errorf("after Reset: %+v", timer)
	}
}

func TestValueTimerDuration(t *testing.T) {
	timer := NewValueTimerDuration(1500 * time.Millisecond)
	if timer.Target != 1.5 {
		t.Errorf("Target = %v, want 1.5", timer.Target)
	}
	if timer.TargetDuration() != 1500*time.Millisecond {
		t.Errorf("TargetDuration = %v", timer.TargetDuration())
	}
}

func TestSine(t *testing.T) {
	tests := []struct {
		name                      string
		amp, t, freq, hPhase, vPh float64
		want                      float64
	}{
		{"zero", 1, 0, 1, 0, 0, 0},
		{"quarter period", 2, 0.25, 1, 0, 0, 2},
		{"vertical phase", 1, 0, 1, 0, 3, 3},
		{"horizontal phase", 1, 0, 1, math.Pi / 2, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sine(tt.amp, tt.t, tt.freq, tt.hPhase, tt.vPh)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sine = %v, want %v", got, tt.want)
			}
		})
	}

	got := SineAngular(1, 1, math.Pi/2, 0, 0)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("SineAngular = %v, want 1", got)
	}
}

func TestLayerMask(t *testing.T) {
	if got := LayerMask(); got != 0 {
		t.Errorf("LayerMask() = %#x, want 0", got)
	}
	if got := LayerMask(0, 3, 31); got != 1|1<<3|1<<31 {
		t.Errorf("LayerMask(0,3,31) = %#x", got)
	}
	if got := LayerMask(2, 2); got != 1<<2 {
		t.Errorf("duplicate layers = %#x", got)
	}
	// Out of range layers are dropped outside debug mode.
	if got := LayerMask(1, 40); got != 1<<1 {
		t.Errorf("LayerMask(1,40) = %#x", got)
	}

	m := LayerMask(5)
	if !HasLayer(m, 5) || HasLayer(m, 4) || HasLayer(m, 40) {
		t.Error("HasLayer mismatch")
	}
}

func TestLayerMaskPanicsInDebug(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for layer 32 in debug mode")
		}
	}()
	LayerMask(32)
}
