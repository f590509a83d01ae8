// Package headless drives a game without a terminal. Input comes from a
// small script of held keys, and the driver collects the events the game
// reports. It backs the sim command and long-running determinism checks.
package headless

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Segment holds a set of keys for a number of consecutive steps.
type Segment struct {
	Actions []core.Action
	Steps   int
}

// Script is a sequence of held-key segments.
//
// The text form is a comma separated list of tokens. Each token is a set of
// keys followed by an optional "*count": L runs left, R runs right, J holds
// jump and "." holds nothing. "R*30,RJ*5,.*10" runs right for 30 steps,
// jumps while running for 5 and then lets go for 10.
type Script struct {
	Segments []Segment
}

// ParseScript parses the text form of a script. An empty string is an
// empty script.
func ParseScript(text string) (Script, error) {
	var s Script

	for i, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		seg, err := parseSegment(token)
		if err != nil {
			return Script{}, fmt.Errorf("script token %d %q: %w", i+1, token, err)
		}
		s.Segments = append(s.Segments, seg)
	}

	return s, nil
}

func parseSegment(token string) (Segment, error) {
	keys, count, hasCount := strings.Cut(token, "*")

	seg := Segment{Steps: 1}
	if hasCount {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return Segment{}, fmt.Errorf("bad repeat count: %w", err)
		}
		if n <= 0 {
			return Segment{}, fmt.Errorf("repeat count must be positive, got %d", n)
		}
		seg.Steps = n
	}

	keys = strings.TrimSpace(keys)
	if keys == "" {
		return Segment{}, fmt.Errorf("missing keys")
	}
	if keys == "." {
		return seg, nil
	}

	for _, r := range strings.ToUpper(keys) {
		var a core.Action
		switch r {
		case 'L':
			a = core.ActionLeft
		case 'R':
			a = core.ActionRight
		case 'J':
			a = core.ActionJump
		default:
			return Segment{}, fmt.Errorf("unknown key %q", r)
		}
		seg.Actions = append(seg.Actions, a)
	}

	return seg, nil
}

// Len returns the total number of steps the script covers.
func (s Script) Len() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Steps
	}
	return n
}

// FrameAt returns the input for step i. Steps past the end hold nothing.
func (s Script) FrameAt(i int) core.InputFrame {
	frame := core.NewInputFrame()
	for _, seg := range s.Segments {
		if i < seg.Steps {
			for _, a := range seg.Actions {
				frame.Set(a)
			}
			return frame
		}
		i -= seg.Steps
	}
	return frame
}

// String renders the script back to its text form.
func (s Script) String() string {
	tokens := make([]string, 0, len(s.Segments))
	for _, seg := range s.Segments {
		var b strings.Builder
		if len(seg.Actions) == 0 {
			b.WriteByte('.')
		}
		for _, a := range seg.Actions {
			switch a {
			case core.ActionLeft:
				b.WriteByte('L')
			case core.ActionRight:
				b.WriteByte('R')
			case core.ActionJump:
				b.WriteByte('J')
			}
		}
		if seg.Steps != 1 {
			fmt.Fprintf(&b, "*%d", seg.Steps)
		}
		tokens = append(tokens, b.String())
	}
	return strings.Join(tokens, ",")
}
