// Package ibit drives the iBIT robot controller board for the BBC
// micro:bit: a two-motor bridge, two servo headers, and an 8-channel
// 12-bit I2C ADC.
//
// All operations are synchronous pin writes plus linear value scaling;
// the one bus transaction is the ADC read. The driver holds no state
// machine and performs no retries: bus errors surface to the caller.
package ibit

import (
	"time"

	"tinygo.org/x/drivers"

	"ibit-go/drivers/ads7828"
	"ibit-go/errcode"
	"ibit-go/x/mathx"
	"ibit-go/x/ramp"
)

// Servo timing: 50 Hz frame, 500..2500 µs pulse over 0..180 degrees.
const (
	servoFreqHz   = 50
	servoMinUs    = 500
	servoMaxUs    = 2500
	servoPeriodUs = 20000
)

// DefaultMotorFreqHz mirrors the stock firmware, which leaves the speed
// pins at the host's default analog period (20 ms).
const DefaultMotorFreqHz = 50

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// ADCAddress must be 0x48 (v1 boards) or 0x4A (v2). Defaults to 0x4A.
	ADCAddress uint16
	// MotorFreqHz is the PWM carrier for the speed pins.
	// Defaults to DefaultMotorFreqHz.
	MotorFreqHz uint32
}

// Device is a handle to one iBIT board.
type Device struct {
	pins       Pins
	adc        ads7828.Device
	cfg        Config
	servoReady [2]bool
}

// New creates a new board connection. The I2C bus must already be
// configured. This function only creates the Device object; call
// Configure before use.
func New(bus drivers.I2C, pins Pins) Device {
	return Device{
		pins: pins,
		adc:  ads7828.New(bus),
	}
}

// Configure applies optional config and drives every output to the safe
// state: motors stopped, servos detached.
func (d *Device) Configure(cfgs ...Config) error {
	cfg := Config{}
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}
	if cfg.ADCAddress == 0 {
		cfg.ADCAddress = ads7828.Address
	}
	if cfg.MotorFreqHz == 0 {
		cfg.MotorFreqHz = DefaultMotorFreqHz
	}
	if cfg.ADCAddress != ads7828.AddressV1 && cfg.ADCAddress != ads7828.AddressV2 {
		return errcode.InvalidAddress
	}
	d.cfg = cfg
	d.adc.Configure(ads7828.Config{Address: cfg.ADCAddress})

	// Direction pins idle high with zero duty; that is the bridge's
	// stopped state.
	for _, p := range []DigitalPin{d.pins.M1Dir, d.pins.M2Dir} {
		if err := p.ConfigureOutput(true); err != nil {
			return err
		}
	}
	for _, p := range []PWMPin{d.pins.M1Speed, d.pins.M2Speed} {
		if err := p.Configure(cfg.MotorFreqHz); err != nil {
			return err
		}
		p.Set(0)
	}
	d.servoReady = [2]bool{}
	return nil
}

// speedDuty maps a percentage speed to a PWM duty. Inputs outside 0..100
// clamp.
func speedDuty(speed int) uint16 {
	s := mathx.Clamp(speed, 0, 100)
	return mathx.MapU16(uint16(s), 0, 100, 0, DutyMax)
}

// ---- Motor operations ----

// Motor drives both motors in the given direction at speed percent
// (0..100, clamped).
func (d *Device) Motor(dir Direction, speed int) error {
	duty := speedDuty(speed)
	switch dir {
	case Forward:
		d.pins.M1Dir.Set(true)
		d.pins.M1Speed.Set(duty)
		d.pins.M2Dir.Set(false)
		d.pins.M2Speed.Set(duty)
	case Backward:
		d.pins.M1Dir.Set(false)
		d.pins.M1Speed.Set(duty)
		d.pins.M2Dir.Set(true)
		d.pins.M2Speed.Set(duty)
	default:
		return errcode.InvalidParams
	}
	return nil
}

// MotorPair drives both motors in the given direction with per-side
// speeds, for trimming a vehicle that pulls to one side.
func (d *Device) MotorPair(dir Direction, speed1, speed2 int) error {
	d1 := speedDuty(speed1)
	d2 := speedDuty(speed2)
	switch dir {
	case Forward:
		d.pins.M1Dir.Set(true)
		d.pins.M1Speed.Set(d1)
		d.pins.M2Dir.Set(false)
		d.pins.M2Speed.Set(d2)
	case Backward:
		d.pins.M1Dir.Set(false)
		d.pins.M1Speed.Set(d1)
		d.pins.M2Dir.Set(true)
		d.pins.M2Speed.Set(d2)
	default:
		return errcode.InvalidParams
	}
	return nil
}

// MotorEach drives a single motor channel.
func (d *Device) MotorEach(ch MotorChannel, dir Direction, speed int) error {
	duty := speedDuty(speed)
	switch {
	case ch == M1 && dir == Forward:
		d.pins.M1Dir.Set(true)
		d.pins.M1Speed.Set(duty)
	case ch == M2 && dir == Forward:
		d.pins.M2Dir.Set(false)
		d.pins.M2Speed.Set(duty)
	case ch == M1 && dir == Backward:
		d.pins.M1Dir.Set(false)
		d.pins.M1Speed.Set(duty)
	case ch == M2 && dir == Backward:
		d.pins.M2Dir.Set(true)
		d.pins.M2Speed.Set(duty)
	default:
		return errcode.InvalidParams
	}
	return nil
}

// Spin counter-rotates the motors to spin the vehicle in place.
func (d *Device) Spin(dir SpinDirection, speed int) error {
	duty := speedDuty(speed)
	switch dir {
	case SpinLeft:
		d.pins.M1Dir.Set(false)
		d.pins.M1Speed.Set(duty)
		d.pins.M2Dir.Set(false)
		d.pins.M2Speed.Set(duty)
	case SpinRight:
		d.pins.M1Dir.Set(true)
		d.pins.M1Speed.Set(duty)
		d.pins.M2Dir.Set(true)
		d.pins.M2Speed.Set(duty)
	default:
		return errcode.InvalidParams
	}
	return nil
}

// Turn drives one side forward while the other coasts.
func (d *Device) Turn(dir TurnDirection, speed int) error {
	duty := speedDuty(speed)
	switch dir {
	case TurnLeft:
		d.pins.M1Dir.Set(true)
		d.pins.M1Speed.Set(0)
		d.pins.M2Dir.Set(false)
		d.pins.M2Speed.Set(duty)
	case TurnRight:
		d.pins.M1Dir.Set(true)
		d.pins.M1Speed.Set(duty)
		d.pins.M2Dir.Set(false)
		d.pins.M2Speed.Set(0)
	default:
		return errcode.InvalidParams
	}
	return nil
}

// MotorStop stops both motors: direction pins high, zero duty.
func (d *Device) MotorStop() {
	d.pins.M1Dir.Set(true)
	d.pins.M1Speed.Set(0)
	d.pins.M2Dir.Set(true)
	d.pins.M2Speed.Set(0)
}

// MotorRamp drives both motors in dir, ramping linearly from one speed
// percentage to another. It blocks for roughly durationMs; steps==0 or
// durationMs==0 snaps straight to the target.
func (d *Device) MotorRamp(dir Direction, from, to int, durationMs uint32, steps uint16) error {
	if dir != Forward && dir != Backward {
		return errcode.InvalidParams
	}
	cur := uint16(mathx.Clamp(from, 0, 100))
	tgt := uint16(mathx.Clamp(to, 0, 100))
	if err := d.Motor(dir, int(cur)); err != nil {
		return err
	}
	ramp.StartLinear(cur, tgt, 100, durationMs, steps,
		func(step time.Duration) bool { time.Sleep(step); return true },
		func(level uint16) { _ = d.Motor(dir, int(level)) },
	)
	return nil
}

// ---- Servo operations ----

// Servo moves a servo to the given angle. Degrees outside 0..180 clamp.
// The first write on a channel configures the 20 ms PWM frame.
func (d *Device) Servo(ch ServoChannel, degrees int) error {
	p, err := d.servoPin(ch)
	if err != nil {
		return err
	}
	if !d.servoReady[ch] {
		if err := p.Configure(servoFreqHz); err != nil {
			return err
		}
		d.servoReady[ch] = true
	}
	deg := uint16(mathx.Clamp(degrees, 0, 180))
	pulseUs := mathx.MapU16(deg, 0, 180, servoMinUs, servoMaxUs)
	duty := uint16(uint32(pulseUs) * DutyMax / servoPeriodUs)
	p.Set(mathx.Clamp(duty, 0, DutyMax))
	return nil
}

// ServoStop detaches a servo: duty to zero, then the pin is released and
// driven low so the horn can move freely.
func (d *Device) ServoStop(ch ServoChannel) error {
	p, err := d.servoPin(ch)
	if err != nil {
		return err
	}
	p.Set(0)
	p.Enable(false)
	d.servoReady[ch] = false
	return nil
}

func (d *Device) servoPin(ch ServoChannel) (PWMPin, error) {
	switch ch {
	case SV1:
		return d.pins.SV1, nil
	case SV2:
		return d.pins.SV2, nil
	}
	return nil, errcode.InvalidChannel
}

// ---- ADC operations ----

// ReadADC performs one conversion on ADC channel ch (0..7). The result is
// a 12-bit value in [0, 4095]. Bus errors surface as-is.
func (d *Device) ReadADC(ch int) (uint16, error) {
	return d.adc.Read(ch)
}

// ReadADCCmd accepts a raw converter command byte (ads7828.CmdCh0..CmdCh7),
// for callers holding the blocks-style channel constants.
func (d *Device) ReadADCCmd(cmd byte) (uint16, error) {
	return d.adc.ReadCmd(cmd)
}

// SetADCAddress switches between the v1 (0x48) and v2 (0x4A) board
// addresses.
func (d *Device) SetADCAddress(addr uint16) error {
	if addr != ads7828.AddressV1 && addr != ads7828.AddressV2 {
		return errcode.InvalidAddress
	}
	d.cfg.ADCAddress = addr
	d.adc.Configure(ads7828.Config{Address: addr})
	return nil
}

// ADCAddress returns the converter address currently in use.
func (d *Device) ADCAddress() uint16 { return d.adc.Address }
