// cmd/boardtest/run.go
package main

import (
	"time"

	"ibit-go/ibit"
)

// Inputs abstracts the two QC buttons so the loop runs on host builds too.
type Inputs struct {
	ButtonA func() bool
	ButtonB func() bool
}

const (
	tick    = 10 * time.Millisecond
	slot    = 500 * time.Millisecond
	qcSpeed = 60
)

// run is the QC loop: button A dumps the ADC channels, button B exercises
// motors and servos, no button forces the safe state. The drive direction
// toggles every four slots (every two seconds). cycles==0 loops forever.
func run(d *ibit.Device, in Inputs, cycles int) {
	dir := ibit.Forward
	slotN := 0
	done := 0
	last := time.Now()

	for {
		time.Sleep(tick)
		if time.Since(last) < slot {
			continue
		}
		last = time.Now()

		if slotN%4 == 0 {
			if dir == ibit.Forward {
				dir = ibit.Backward
			} else {
				dir = ibit.Forward
			}
		}
		slotN++

		switch {
		case in.ButtonA():
			println("ADC0-7 read test")
			for ch := 0; ch < 8; ch++ {
				v, err := d.ReadADC(ch)
				if err != nil {
					println("  ADC", ch, "error:", err.Error())
					continue
				}
				println("  ADC", ch, "=", v)
			}

		case in.ButtonB():
			println("motor and servo test:", dir.String(), "speed", qcSpeed)
			// Alternate between running and stopped each slot.
			if slotN%2 != 0 {
				_ = d.Motor(dir, qcSpeed)
			} else {
				d.MotorStop()
			}
			// Swap servo targets with the direction.
			if dir == ibit.Backward {
				_ = d.Servo(ibit.SV1, 60)
				_ = d.Servo(ibit.SV2, 120)
			} else {
				_ = d.Servo(ibit.SV1, 120)
				_ = d.Servo(ibit.SV2, 60)
			}

		default:
			d.MotorStop()
			_ = d.ServoStop(ibit.SV1)
			_ = d.ServoStop(ibit.SV2)
		}

		if cycles > 0 {
			done++
			if done >= cycles {
				return
			}
		}
	}
}
