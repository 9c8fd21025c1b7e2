// Package ads7828 provides a driver for the ADS7828 12-bit, 8-channel
// I2C analog-to-digital converter.
//
// One conversion is one bus transaction: a command byte selecting the
// input, then a two-byte read of the result. Results are always in
// [0, 4095].
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
package ads7828

import (
	"errors"

	"tinygo.org/x/drivers"

	"ibit-go/x/mathx"
)

// I2C addresses. Robot-controller boards ship the converter at 0x48 (v1)
// or 0x4A (v2).
const (
	AddressV1 = 0x48
	AddressV2 = 0x4A

	// Address is the default (v2 boards).
	Address = AddressV2
)

// Command bytes for single-ended conversions. The channel-select bits are
// interleaved odd/even per the datasheet; the power-down bits keep the
// internal reference off and the converter on.
const (
	CmdCh0 byte = 0x84
	CmdCh1 byte = 0xC4
	CmdCh2 byte = 0x94
	CmdCh3 byte = 0xD4
	CmdCh4 byte = 0xA4
	CmdCh5 byte = 0xE4
	CmdCh6 byte = 0xB4
	CmdCh7 byte = 0xF4
)

var commands = [8]byte{CmdCh0, CmdCh1, CmdCh2, CmdCh3, CmdCh4, CmdCh5, CmdCh6, CmdCh7}

// Errors returned by the driver.
var (
	ErrInvalidChannel = errors.New("ads7828: invalid channel")
	ErrInvalidCommand = errors.New("ads7828: invalid command byte")
)

// Config controls the bus address. All fields are optional.
type Config struct {
	// Address defaults to 0x4A if zero.
	Address uint16
}

// Device wraps an I2C connection to an ADS7828 device.
type Device struct {
	bus     drivers.I2C
	Address uint16

	buf [2]byte // reuse buffer to avoid allocations
}

// New creates a new ADS7828 connection. The I2C bus must already be
// configured. This function only creates the Device object; it does not
// touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure applies optional config. It may be called with no cfg.
func (d *Device) Configure(cfgs ...Config) {
	if len(cfgs) > 0 && cfgs[0].Address != 0 {
		d.Address = cfgs[0].Address
	}
}

// Command returns the command byte for a single-ended conversion on
// channel ch (0..7).
func Command(ch int) (byte, error) {
	if !mathx.Between(ch, 0, 7) {
		return 0, ErrInvalidChannel
	}
	return commands[ch], nil
}

// Read performs a single-ended conversion on channel ch (0..7) and returns
// the 12-bit result. Bus errors are returned as-is.
func (d *Device) Read(ch int) (uint16, error) {
	cmd, err := Command(ch)
	if err != nil {
		return 0, err
	}
	return d.ReadCmd(cmd)
}

// ReadCmd performs a conversion using a raw command byte. The byte must be
// one of the single-ended command values; anything else is rejected rather
// than written to the bus.
func (d *Device) ReadCmd(cmd byte) (uint16, error) {
	valid := false
	for _, c := range commands {
		if c == cmd {
			valid = true
			break
		}
	}
	if !valid {
		return 0, ErrInvalidCommand
	}
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, []byte{cmd}, data); err != nil {
		return 0, err
	}
	return (uint16(data[0])<<8 | uint16(data[1])) & 0x0FFF, nil
}
