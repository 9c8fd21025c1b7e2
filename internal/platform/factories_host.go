// internal/platform/factories_host.go
//go:build !microbit && !microbit_v2

package platform

import (
	"sync"

	"tinygo.org/x/drivers"

	"ibit-go/ibit"
)

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C for host-side runs. It records the
// last transaction and answers two-byte reads with a canned 12-bit value.
type HostI2C struct {
	mu     sync.Mutex
	Value  uint16 // returned for converter reads, masked to 12 bits
	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	if len(r) >= 2 {
		v := h.Value & 0x0FFF
		r[0] = byte(v >> 8)
		r[1] = byte(v)
	}
	return nil
}

// ----------------------------- Pins (host) -----------------------------------

// FakePin implements ibit.DigitalPin and records what the driver does.
type FakePin struct {
	N     int
	Level bool
	Sets  int
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.Level = initial
	return nil
}

func (p *FakePin) Set(level bool) {
	p.Level = level
	p.Sets++
}

func (p *FakePin) Get() bool   { return p.Level }
func (p *FakePin) Number() int { return p.N }

// FakePWM implements ibit.PWMPin and records what the driver does.
type FakePWM struct {
	N      int
	FreqHz uint32
	Duty   uint16
	On     bool
}

func (p *FakePWM) Configure(freqHz uint32) error {
	p.FreqHz = freqHz
	p.On = true
	return nil
}

func (p *FakePWM) Set(duty uint16) { p.Duty = duty }

func (p *FakePWM) Enable(on bool) {
	p.On = on
	if !on {
		p.Duty = 0
	}
}

func (p *FakePWM) Number() int { return p.N }

// DefaultI2C returns an inert host bus with a mid-scale canned reading.
func DefaultI2C() drivers.I2C { return &HostI2C{Value: 2048} }

// DefaultPins returns recording fakes wired like the board.
func DefaultPins() ibit.Pins {
	return ibit.Pins{
		M1Dir:   &FakePin{N: ibit.PinM1Dir},
		M1Speed: &FakePWM{N: ibit.PinM1Speed},
		M2Dir:   &FakePin{N: ibit.PinM2Dir},
		M2Speed: &FakePWM{N: ibit.PinM2Speed},
		SV1:     &FakePWM{N: ibit.PinSV1},
		SV2:     &FakePWM{N: ibit.PinSV2},
	}
}
