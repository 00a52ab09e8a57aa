package sprig

import "math"

// Sine samples amp*sin(2*pi*freq*t + hPhase) + vPhase. freq is in Hz and t in
// seconds; hPhase shifts the wave in radians and vPhase offsets its output.
func Sine(amp, t, freq, hPhase, vPhase float64) float64 {
	return amp*math.Sin(2*math.Pi*freq*t+hPhase) + vPhase
}

// SineAngular is Sine with the frequency already in radians per second.
func SineAngular(amp, t, omega, hPhase, vPhase float64) float64 {
	return amp*math.Sin(omega*t+hPhase) + vPhase
}
