package toast

import "fmt"

// Position is the screen corner the toast container is anchored to.
type Position string

const (
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	switch p {
	case PositionBottomRight, PositionBottomLeft, PositionTopRight, PositionTopLeft:
		return true
	}
	return false
}

// Class returns the container class for p. Unknown positions fall back to
// bottom-right.
func (p Position) Class() string {
	if !p.Valid() {
		p = PositionBottomRight
	}
	return "toasts-provider-" + string(p)
}

// UnmarshalText lets env decoding reject unknown positions.
func (p *Position) UnmarshalText(text []byte) error {
	v := Position(text)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, text)
	}
	*p = v
	return nil
}
