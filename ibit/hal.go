package ibit

// ---- Pin abstractions ----
//
// The driver never touches machine.Pin directly; internal/platform supplies
// hardware-backed handles on MCU builds and recording fakes on the host.

// DigitalPin is a push-pull output pin.
type DigitalPin interface {
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PWMPin is an analog-style output pin. Duty is logical, 0..DutyMax,
// regardless of the underlying counter resolution.
type PWMPin interface {
	Configure(freqHz uint32) error
	Set(duty uint16)
	// Enable(false) detaches the PWM and drives the pin low.
	Enable(on bool)
	Number() int
}

// DutyMax matches the host board's 10-bit analog-write convention.
const DutyMax = 1023

// Pins wires the driver to the six pins the board uses.
type Pins struct {
	M1Dir, M2Dir     DigitalPin
	M1Speed, M2Speed PWMPin
	SV1, SV2         PWMPin
}
