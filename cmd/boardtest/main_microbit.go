// cmd/boardtest/main_microbit.go
//go:build microbit_v2

package main

import (
	"time"

	"machine"

	"ibit-go/ibit"
	"ibit-go/internal/platform"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("ibit boardtest")

	btnA := machine.BUTTONA
	btnB := machine.BUTTONB
	btnA.Configure(machine.PinConfig{Mode: machine.PinInput})
	btnB.Configure(machine.PinConfig{Mode: machine.PinInput})

	d := ibit.New(platform.DefaultI2C(), platform.DefaultPins())
	if err := d.Configure(); err != nil {
		println("configure:", err.Error())
		return
	}

	// Buttons are active low.
	run(&d, Inputs{
		ButtonA: func() bool { return !btnA.Get() },
		ButtonB: func() bool { return !btnB.Get() },
	}, 0)
}
