package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

// Coordinate identifies one of the 9 cells. X is the column (A-C), Y is the row (1-3).
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (that Coordinate) IsValid() bool {
	return that.X >= 0 && that.X < BoardSize && that.Y >= 0 && that.Y < BoardSize
}

// String formats the coordinate as column letter + row digit, e.g. (0,1) -> "A2".
func (that Coordinate) String() string {
	if !that.IsValid() {
		return fmt.Sprintf("(%d,%d)", that.X, that.Y)
	}

	return string([]byte{'A' + byte(that.X), '1' + byte(that.Y)})
}

// AllCoordinates returns every coordinate, x outer and y inner.
// This is the canonical enumeration order for move scanning.
func AllCoordinates() []Coordinate {
	coordinates := make([]Coordinate, 0, BoardSize*BoardSize)
	for x := range BoardSize {
		for y := range BoardSize {
			coordinates = append(coordinates, NewCoordinate(x, y))
		}
	}

	return coordinates
}

// ParseCoordinateError is returned for any text that is not a column letter followed by a row digit.
type ParseCoordinateError struct {
	Raw string
}

func (that *ParseCoordinateError) Error() string {
	return fmt.Sprintf("Invalid coordinate: %s (expected format: A1)", that.Raw)
}

func (that *ParseCoordinateError) Unwrap() error {
	return apperror.ErrInvalidCoordinate
}

// ParseCoordinate - parses "A1".."C3" (letters are case-insensitive) into a Coordinate.
func ParseCoordinate(raw string) (Coordinate, error) {
	if len(raw) != 2 {
		return Coordinate{}, &ParseCoordinateError{Raw: raw}
	}

	var x int
	switch raw[0] {
	case 'A', 'a':
		x = 0
	case 'B', 'b':
		x = 1
	case 'C', 'c':
		x = 2
	default:
		return Coordinate{}, &ParseCoordinateError{Raw: raw}
	}

	var y int
	switch raw[1] {
	case '1':
		y = 0
	case '2':
		y = 1
	case '3':
		y = 2
	default:
		return Coordinate{}, &ParseCoordinateError{Raw: raw}
	}

	return NewCoordinate(x, y), nil
}
