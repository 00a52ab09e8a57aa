package sprig

import (
	"errors"
	"strings"
	"testing"
)

const bounceScript = `{"steps": [
	{"action": "turn", "heading": "south"},
	{"action": "tick", "frames": 5, "reaction": "bounce"},
	{"action": "expect", "x": 5, "y": 8, "heading": "north"},
	{"action": "reset"},
	{"action": "expect", "x": 5, "y": 5, "heading": "north"},
	{"action": "turn", "heading": "east"},
	{"action": "try", "frames": 5},
	{"action": "expect", "x": 0, "ok": true},
	{"action": "try"},
	{"action": "expect", "x": 0, "ok": false}
]}`

func TestMoverScriptRun(t *testing.T) {
	s, err := LoadMoverScript([]byte(bounceScript))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 10 {
		t.Errorf("Len = %d, want 10", s.Len())
	}
	m := NewMover(5, 5, North)
	if err := s.Run(&m, RectI{Width: 10, Height: 10}); err != nil {
		t.Fatal(err)
	}
}

func TestMoverScriptDefaultReactionIsStop(t *testing.T) {
	s, err := LoadMoverScript([]byte(`{"steps": [
		{"action": "tick", "frames": 3},
		{"action": "expect", "x": 0, "y": 0}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	m := NewMover(0, 1, North)
	if err := s.Run(&m, RectI{Width: 4, Height: 4}); err != nil {
		t.Error(err)
	}
}

func TestMoverScriptFailedExpectation(t *testing.T) {
	s, err := LoadMoverScript([]byte(`{"steps": [
		{"action": "tick"},
		{"action": "expect", "x": 99}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	m := NewMover(1, 1, West)
	err = s.Run(&m, RectI{Width: 4, Height: 4})
	if !errors.Is(err, ErrScriptExpectation) {
		t.Fatalf("err = %v, want ErrScriptExpectation", err)
	}
	if !strings.Contains(err.Error(), "step 1") || !strings.Contains(err.Error(), "x = 2, want 99") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestLoadMoverScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad json", `{"steps": [`, "parse mover script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"bad heading", `{"steps": [{"action": "turn", "heading": "up"}]}`, "step 0"},
		{"missing heading", `{"steps": [{"action": "turn"}]}`, "invalid heading"},
		{"bad reaction", `{"steps": [{"action": "tick", "reaction": "wrap"}]}`, "invalid bounds reaction"},
		{"bad expect heading", `{"steps": [{"action": "expect", "heading": "nowhere"}]}`, "step 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMoverScript([]byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want it to contain %q", err.Error(), tt.want)
			}
		})
	}
}
