package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	// Screen size and tick rate are all a game is given; the simulation
	// takes no seed.
	want := RuntimeConfig{80, 24, 60}
	if got := DefaultConfig(); got != want {
		t.Errorf("DefaultConfig() = %+v, want %+v", got, want)
	}
}
