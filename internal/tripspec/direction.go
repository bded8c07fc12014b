package tripspec

import "fmt"

// Direction is one of the two logical travel directions declared for a route.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Directions lists both directions in declaration order.
var Directions = [2]Direction{Forward, Backward}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Index is the numeric direction index handed to the converter.
func (d Direction) Index() int {
	return int(d)
}

func (d Direction) valid() bool {
	return d == Forward || d == Backward
}

// Heading is an optional compass-like tag attached to a declared direction.
type Heading string

const (
	HeadingNone             Heading = ""
	HeadingNorth            Heading = "north"
	HeadingSouth            Heading = "south"
	HeadingEast             Heading = "east"
	HeadingWest             Heading = "west"
	HeadingInbound          Heading = "inbound"
	HeadingOutbound         Heading = "outbound"
	HeadingClockwise        Heading = "clockwise"
	HeadingCounterclockwise Heading = "counterclockwise"
)
