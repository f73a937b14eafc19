package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// IllegalMoveError is returned by Place when the target cell is already occupied.
type IllegalMoveError struct {
	Coordinate Coordinate
}

func (that *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s is not a legal move.", that.Coordinate)
}

func (that *IllegalMoveError) Unwrap() error {
	return apperror.ErrCellOccupied
}

// Board is the 3x3 grid. Cells are stored as [y][x].
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

func NewBoardFromCells(cells [BoardSize][BoardSize]Cell) *Board {
	return &Board{cells: cells}
}

// Clone returns an independent copy; mutating it never affects the original.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) Cells() [BoardSize][BoardSize]Cell {
	return that.cells
}

// Get returns the cell at coordinate. Coordinates off the grid read as EmptyCell.
func (that *Board) Get(coordinate Coordinate) Cell {
	if !coordinate.IsValid() {
		return EmptyCell
	}

	return that.cells[coordinate.Y][coordinate.X]
}

func (that *Board) IsLegal(coordinate Coordinate) bool {
	return coordinate.IsValid() && that.Get(coordinate).IsEmpty()
}

// Place - occupies the cell for side. On failure the board is left unchanged.
func (that *Board) Place(coordinate Coordinate, side Side) error {
	if !that.IsLegal(coordinate) {
		return &IllegalMoveError{Coordinate: coordinate}
	}

	that.cells[coordinate.Y][coordinate.X] = OccupiedBy(side)

	return nil
}

// LegalMoves returns the empty cells in AllCoordinates order.
func (that *Board) LegalMoves() []Coordinate {
	moves := make([]Coordinate, 0, BoardSize*BoardSize)
	for _, coordinate := range AllCoordinates() {
		if that.IsLegal(coordinate) {
			moves = append(moves, coordinate)
		}
	}

	return moves
}

func (that *Board) HasLegalMoves() bool {
	for _, coordinate := range AllCoordinates() {
		if that.IsLegal(coordinate) {
			return true
		}
	}

	return false
}

// Winner returns the side holding a complete line, scanning Lines() in order.
// Under legal alternating play at most one side can hold a line, so the scan
// order is only observable on hand-built boards where both sides have one: the
// first line in Lines() order wins.
func (that *Board) Winner() (Side, bool) {
	for _, line := range that.Lines() {
		if winner, ok := line.Winner(); ok {
			return winner, true
		}
	}

	return "", false
}

func (that *Board) IsInProgress() bool {
	_, won := that.Winner()
	return that.HasLegalMoves() && !won
}

// MarshalJSON encodes the board as 9 cells, index y*3+x.
func (that *Board) MarshalJSON() ([]byte, error) {
	var flat [BoardSize * BoardSize]Cell
	for y := range BoardSize {
		for x := range BoardSize {
			flat[y*BoardSize+x] = that.cells[y][x]
		}
	}

	return json.Marshal(flat)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var flat [BoardSize * BoardSize]Cell
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	for i, cell := range flat {
		if _, ok := cell.Side(); !ok && !cell.IsEmpty() {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidCell, i, cell)
		}
		that.cells[i/BoardSize][i%BoardSize] = cell
	}

	return nil
}
