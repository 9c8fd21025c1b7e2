// cmd/boardtest/main_host.go
//go:build !microbit && !microbit_v2

package main

import (
	"ibit-go/ibit"
	"ibit-go/internal/platform"
	"ibit-go/x/timex"
)

// Host build: run a few QC cycles against the recording fakes so the loop
// logic can be exercised without hardware.
func main() {
	start := timex.NowMs()

	d := ibit.New(platform.DefaultI2C(), platform.DefaultPins())
	if err := d.Configure(); err != nil {
		println("configure:", err.Error())
		return
	}

	// Simulated button sequence: A, then B, then nothing, repeating.
	// ButtonA is evaluated exactly once per slot, so it owns the counter.
	var cycle int
	in := Inputs{
		ButtonA: func() bool { cycle++; return cycle%4 == 1 },
		ButtonB: func() bool { return cycle%4 == 2 },
	}

	run(&d, in, 8)
	println("done in", timex.NowMs()-start, "ms")
}
