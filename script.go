package sprig

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a mover script.
type scriptStep struct {
	Action   string `json:"action"`
	Frames   int    `json:"frames,omitempty"`
	Reaction string `json:"reaction,omitempty"`
	Heading  string `json:"heading,omitempty"`
	X        *int   `json:"x,omitempty"`
	Y        *int   `json:"y,omitempty"`
	OK       *bool  `json:"ok,omitempty"`
}

// moverScript is the top-level JSON structure for a mover script.
type moverScript struct {
	Steps []scriptStep `json:"steps"`
}

// MoverScript replays a sequence of ticks against a Mover, for headless
// checks of movement rules and level layouts:
//
//	{"steps": [
//	  {"action": "turn", "heading": "south"},
//	  {"action": "tick", "frames": 5, "reaction": "bounce"},
//	  {"action": "expect", "x": 5, "y": 8, "heading": "north"}
//	]}
//
// Actions are "tick" (MoveWithinBounds, Frames times, default reaction
// stop), "try" (TryMoveWithinBounds, Frames times), "turn", "reset" and
// "expect". An expect may check x, y, heading and ok, the result of the
// last try.
type MoverScript struct {
	steps []scriptStep
}

// LoadMoverScript parses and validates a JSON mover script.
func LoadMoverScript(jsonData []byte) (*MoverScript, error) {
	var script moverScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse mover script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse mover script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse mover script: step %d: %w", i, err)
		}
	}
	return &MoverScript{steps: script.Steps}, nil
}

// Len returns the number of steps.
func (s *MoverScript) Len() int { return len(s.steps) }

func (st scriptStep) validate() error {
	switch st.Action {
	case "tick":
		if st.Reaction != "" {
			if _, err := ParseBoundsReaction(st.Reaction); err != nil {
				return err
			}
		}
	case "turn":
		if _, err := ParseCardinalDirection(st.Heading); err != nil {
			return err
		}
	case "expect":
		if st.Heading != "" {
			if _, err := ParseCardinalDirection(st.Heading); err != nil {
				return err
			}
		}
	case "try", "reset":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Run executes every step against m within rect. It stops at the first
// failed expectation and returns it wrapped in ErrScriptExpectation.
func (s *MoverScript) Run(m *Mover, rect RectI) error {
	lastTry := false
	for i, st := range s.steps {
		frames := max(st.Frames, 1)
		switch st.Action {
		case "tick":
			reaction := ReactionStop
			if st.Reaction != "" {
				reaction, _ = ParseBoundsReaction(st.Reaction)
			}
			for range frames {
				m.MoveWithinBounds(rect, reaction)
			}
		case "try":
			for range frames {
				lastTry = m.TryMoveWithinBounds(rect)
			}
		case "turn":
			m.Heading, _ = ParseCardinalDirection(st.Heading)
		case "reset":
			m.Reset()
		case "expect":
			if err := st.check(m, lastTry); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrScriptExpectation, i, err)
			}
		}
	}
	return nil
}

func (st scriptStep) check(m *Mover, lastTry bool) error {
	if st.X != nil && m.X != *st.X {
		return fmt.Errorf("x = %d, want %d", m.X, *st.X)
	}
	if st.Y != nil && m.Y != *st.Y {
		return fmt.Errorf("y = %d, want %d", m.Y, *st.Y)
	}
	if st.Heading != "" {
		want, _ := ParseCardinalDirection(st.Heading)
		if m.Heading != want {
			return fmt.Errorf("heading = %v, want %v", m.Heading, want)
		}
	}
	if st.OK != nil && lastTry != *st.OK {
		return fmt.Errorf("last try = %v, want %v", lastTry, *st.OK)
	}
	return nil
}
