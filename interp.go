package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Interpolator moves a value towards a target by one frame of dt seconds.
type Interpolator interface {
	Interpolate(current, target, dt float64) float64
}

// EaseInOut closes a fixed fraction of the remaining distance per second:
// current - (current-target)*Exponent*dt. Large dt values overshoot; callers
// with long frames should clamp dt or use InterpolationWeight.
type EaseInOut struct {
	Exponent float64
}

// DefaultEaseInOut uses an exponent of 2.
var DefaultEaseInOut = EaseInOut{Exponent: 2}

// Interpolate implements Interpolator.
func (e EaseInOut) Interpolate(current, target, dt float64) float64 {
	return current - (current-target)*e.Exponent*dt
}

// TweenInterpolator eases towards the target over a fixed Duration using a
// gween tween. Changing the target restarts the tween from the current value.
// It keeps per-value state, so each TargetValue needs its own instance.
type TweenInterpolator struct {
	Duration float32
	Ease     ease.TweenFunc

	tween  *gween.Tween
	target float64
}

// NewTweenInterpolator returns a TweenInterpolator. A nil fn uses ease.Linear.
func NewTweenInterpolator(duration float32, fn ease.TweenFunc) *TweenInterpolator {
	return &TweenInterpolator{Duration: duration, Ease: fn}
}

// Interpolate implements Interpolator.
func (t *TweenInterpolator) Interpolate(current, target, dt float64) float64 {
	if t.Duration <= 0 {
		return target
	}
	if t.tween == nil || target != t.target {
		fn := t.Ease
		if fn == nil {
			fn = ease.Linear
		}
		t.tween = gween.New(float32(current), float32(target), t.Duration, fn)
		t.target = target
	}
	val, finished := t.tween.Update(float32(dt))
	if finished {
		return target
	}
	return float64(val)
}

// TargetValue is a value that chases Target a little every tick.
type TargetValue struct {
	Current float64
	Target  float64

	interp Interpolator
}

// NewTargetValue returns a TargetValue driven by interp.
func NewTargetValue(interp Interpolator) (*TargetValue, error) {
	if interp == nil {
		return nil, ErrNilInterpolator
	}
	return &TargetValue{interp: interp}, nil
}

// Interpolator returns the interpolator driving the value.
func (v *TargetValue) Interpolator() Interpolator { return v.interp }

// SetInterpolator swaps the interpolator. A nil interp is rejected and the
// previous one is kept.
func (v *TargetValue) SetInterpolator(interp Interpolator) error {
	if interp == nil {
		return ErrNilInterpolator
	}
	v.interp = interp
	return nil
}

// Tick advances Current towards Target by dt seconds.
func (v *TargetValue) Tick(dt float64) {
	v.Current = v.interp.Interpolate(v.Current, v.Target, dt)
}

// ForceToTarget snaps Current to Target.
func (v *TargetValue) ForceToTarget() {
	v.Current = v.Target
}

// InterpolationWeight returns param*dt clamped to [0, 1], suitable as a lerp
// weight that stays frame-rate independent.
func InterpolationWeight(param, dt float64) float64 {
	return min(max(param*dt, 0), 1)
}
