package entity

// Side is one of the two competing participants.
type Side string

const (
	PlayerX Side = "X"
	PlayerO Side = "O"
)

// Other returns the opposing side. Other(Other(s)) == s.
func (that Side) Other() Side {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Side) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

func (that Side) String() string {
	return string(that)
}

// Cell is one square of the board: empty or occupied by a side.
type Cell string

const EmptyCell Cell = ""

// OccupiedBy returns the cell state for a square taken by side.
func OccupiedBy(side Side) Cell {
	return Cell(side)
}

// Side reports which side occupies the cell, if any.
func (that Cell) Side() (Side, bool) {
	switch Side(that) {
	case PlayerX, PlayerO:
		return Side(that), true
	default:
		return "", false
	}
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}
