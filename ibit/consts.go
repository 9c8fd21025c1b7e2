package ibit

// Directions and channels for the board's motor bridge and servo headers.
// The numeric values match the board's stock firmware blocks.

// Direction selects drive direction for the motor operations.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return "unknown"
}

// TurnDirection selects the side for Turn (one motor coasts).
type TurnDirection uint8

const (
	TurnLeft TurnDirection = iota
	TurnRight
)

// SpinDirection selects the side for Spin (motors counter-rotate).
type SpinDirection uint8

const (
	SpinLeft SpinDirection = iota
	SpinRight
)

// MotorChannel identifies one side of the motor bridge.
type MotorChannel uint8

const (
	M1 MotorChannel = iota
	M2
)

// ServoChannel identifies one of the two servo headers.
type ServoChannel uint8

const (
	SV1 ServoChannel = iota
	SV2
)

// micro:bit edge-connector pins used by the board.
const (
	PinM1Dir   = 13
	PinM1Speed = 14
	PinM2Dir   = 15
	PinM2Speed = 16
	PinSV1     = 8
	PinSV2     = 12
)
