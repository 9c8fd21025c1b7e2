package ramp

import (
	"testing"
	"time"
)

func record() (*[]uint16, Step) {
	var levels []uint16
	return &levels, func(l uint16) { levels = append(levels, l) }
}

func instantTick(time.Duration) bool { return true }

func TestStartLinearSnapsWithoutSteps(t *testing.T) {
	levels, set := record()
	StartLinear(0, 80, 100, 0, 0, instantTick, set)
	if len(*levels) != 1 || (*levels)[0] != 80 {
		t.Fatalf("levels = %v, want single snap to 80", *levels)
	}

	// Target above top snaps to top.
	levels, set = record()
	StartLinear(0, 120, 100, 500, 0, instantTick, set)
	if (*levels)[len(*levels)-1] != 100 {
		t.Fatalf("levels = %v, want snap capped at 100", *levels)
	}
}

func TestStartLinearReachesTarget(t *testing.T) {
	levels, set := record()
	StartLinear(0, 100, 100, 50, 5, instantTick, set)
	got := *levels
	if len(got) == 0 || got[len(got)-1] != 100 {
		t.Fatalf("levels = %v, want final 100", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("levels = %v, want nondecreasing", got)
		}
	}
}

func TestStartLinearRampsDown(t *testing.T) {
	levels, set := record()
	StartLinear(100, 20, 100, 50, 4, instantTick, set)
	got := *levels
	if got[len(got)-1] != 20 {
		t.Fatalf("levels = %v, want final 20", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] > got[i-1] {
			t.Fatalf("levels = %v, want nonincreasing", got)
		}
	}
}

func TestStartLinearCancel(t *testing.T) {
	levels, set := record()
	ticks := 0
	tick := func(time.Duration) bool {
		ticks++
		return ticks <= 1 // cancel after the first wait
	}
	StartLinear(0, 100, 100, 100, 10, tick, set)
	got := *levels
	if len(got) == 0 {
		t.Fatal("expected at least one step before cancel")
	}
	if got[len(got)-1] == 100 {
		t.Fatalf("levels = %v, cancelled ramp must not reach target", got)
	}
}
