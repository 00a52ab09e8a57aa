package sprig

import (
	"fmt"
	"io"
	"os"
)

// debugMode gates the debug-only post-conditions. It mirrors the most recent
// SetDebugMode call; sprig has no per-object debug state.
var debugMode bool

// debugOutput receives debug warnings. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, movers report
// positions that end up outside their bounds after a reaction, out-of-range
// layer indices panic, and task helpers log swallowed errors to stderr.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return debugMode
}

func debugf(format string, args ...any) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[sprig] "+format+"\n", args...)
}

// debugCheckInBounds warns when a mover finished a bounded step outside
// [0, Width) x [0, Height). Diagnostic only; the position is left as is.
func debugCheckInBounds(m *Mover, rect RectI, reaction BoundsReaction) {
	if !debugMode || m.inBounds(rect) {
		return
	}
	debugf("warning: mover at %v heading %v left bounds %v after %v",
		m.Position(), m.Heading, rect, reaction)
}

// debugCheckLayer panics on a layer index that does not fit a 32-bit mask.
// In release mode out-of-range layers are ignored by LayerMask.
func debugCheckLayer(layer uint8) {
	if debugMode && layer >= 32 {
		panic(fmt.Sprintf("sprig debug: layer %d does not fit a 32-bit mask", layer))
	}
}
