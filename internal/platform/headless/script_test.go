package headless

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		segments int
		length   int
	}{
		{"empty", "", 0, 0},
		{"single step", "R", 1, 1},
		{"repeats", "R*30,RJ*5,.*10", 3, 45},
		{"spaces and blanks", " L * 3 , , j ", 2, 4},
		{"idle", ".*60", 1, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseScript(tt.text)
			if err != nil {
				t.Fatalf("ParseScript(%q) failed: %v", tt.text, err)
			}
			if len(s.Segments) != tt.segments {
				t.Errorf("segments = %d, want %d", len(s.Segments), tt.segments)
			}
			if s.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.length)
			}
		})
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"X",
		"R*",
		"R*abc",
		"R*0",
		"R*-2",
		"*5",
		"R,Q*2",
	}

	for _, text := range tests {
		if _, err := ParseScript(text); err == nil {
			t.Errorf("ParseScript(%q) should fail", text)
		}
	}
}

func TestScriptFrameAt(t *testing.T) {
	s, err := ParseScript("R*2,rj,.*2,L")
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}

	tests := []struct {
		step int
		want []core.Action
	}{
		{0, []core.Action{core.ActionRight}},
		{1, []core.Action{core.ActionRight}},
		{2, []core.Action{core.ActionRight, core.ActionJump}},
		{3, nil},
		{4, nil},
		{5, []core.Action{core.ActionLeft}},
		{6, nil},
		{100, nil},
	}

	for _, tt := range tests {
		frame := s.FrameAt(tt.step)
		if len(frame.Actions) != len(tt.want) {
			t.Errorf("FrameAt(%d) = %v, want %v", tt.step, frame.Actions, tt.want)
			continue
		}
		for _, a := range tt.want {
			if !frame.Has(a) {
				t.Errorf("FrameAt(%d) missing %v", tt.step, a)
			}
		}
	}
}

func TestScriptString(t *testing.T) {
	s, err := ParseScript("r*30, RJ*5,.*10,l")
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}
	if got := s.String(); got != "R*30,RJ*5,.*10,L" {
		t.Errorf("String() = %q", got)
	}
}
