// internal/platform/factories_microbit.go
//go:build microbit_v2

package platform

import (
	"machine"

	"tinygo.org/x/drivers"

	"ibit-go/ibit"
	"ibit-go/x/timex"
)

// -----------------------------------------------------------------------------
// Defaults for the BBC micro:bit v2 (nRF52833)
// -----------------------------------------------------------------------------

// DefaultI2C configures I2C0 on the edge connector (P19/P20) at 100 kHz and
// returns it as a drivers.I2C.
func DefaultI2C() drivers.I2C {
	bus := machine.I2C0
	_ = bus.Configure(machine.I2CConfig{
		Frequency: 100 * machine.KHz,
		SDA:       machine.SDA_PIN,
		SCL:       machine.SCL_PIN,
	})
	return bus
}

// DefaultPins returns the board wiring. The motor speed pins share PWM0 and
// the servo pins share PWM1, so the 20 ms servo frame never disturbs the
// motor carrier.
func DefaultPins() ibit.Pins {
	return ibit.Pins{
		M1Dir:   &mbPin{p: machine.P13, n: ibit.PinM1Dir},
		M1Speed: &mbPWM{pwm: machine.PWM0, pin: machine.P14, n: ibit.PinM1Speed},
		M2Dir:   &mbPin{p: machine.P15, n: ibit.PinM2Dir},
		M2Speed: &mbPWM{pwm: machine.PWM0, pin: machine.P16, n: ibit.PinM2Speed},
		SV1:     &mbPWM{pwm: machine.PWM1, pin: machine.P8, n: ibit.PinSV1},
		SV2:     &mbPWM{pwm: machine.PWM1, pin: machine.P12, n: ibit.PinSV2},
	}
}

// ---- GPIO implementation ----

type mbPin struct {
	p machine.Pin
	n int
}

func (r *mbPin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *mbPin) Set(level bool) { r.p.Set(level) }
func (r *mbPin) Get() bool      { return r.p.Get() }
func (r *mbPin) Number() int    { return r.n }

// ---- PWM implementation ----

// pwmGroup is the subset of the machine PWM peripheral the handle needs.
type pwmGroup interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(ch uint8, value uint32)
	Top() uint32
}

// mbPWM is a per-pin PWM handle. Pins on the same peripheral share one
// period; DefaultPins keeps motors and servos on separate peripherals.
type mbPWM struct {
	pwm pwmGroup
	pin machine.Pin
	n   int
	ch  uint8
	on  bool
}

func (p *mbPWM) Configure(freqHz uint32) error {
	if err := p.pwm.Configure(machine.PWMConfig{Period: timex.PeriodFromHz(freqHz)}); err != nil {
		return err
	}
	ch, err := p.pwm.Channel(p.pin)
	if err != nil {
		return err
	}
	p.ch = ch
	p.on = true
	return nil
}

// Set scales a logical 0..DutyMax duty to the peripheral's counter top.
func (p *mbPWM) Set(duty uint16) {
	if !p.on {
		return
	}
	top := p.pwm.Top()
	p.pwm.Set(p.ch, uint32(duty)*top/ibit.DutyMax)
}

func (p *mbPWM) Enable(on bool) {
	p.on = on
	if !on {
		p.pwm.Set(p.ch, 0)
		p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.pin.Low()
	}
}

func (p *mbPWM) Number() int { return p.n }
