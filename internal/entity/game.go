package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one session: a board plus whose turn it is and how it ended.
type Game struct {
	ID     string `json:"id"`
	Board  *Board `json:"board"`
	Turn   Side   `json:"player_turn"`
	Winner Side   `json:"winner,omitempty"`
	Status string `json:"status"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) UpdateGameState() {
	if winner, ok := that.Board.Winner(); ok {
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
		return
	}

	// the game will continue until all the squares are full
	if !that.Board.HasLegalMoves() {
		that.Winner = ""
		that.Status = StatusFinished
		that.Turn = ""
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) MakeTurn(side Side, coordinate Coordinate) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != side {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	if err := that.Board.Place(coordinate, side); err != nil {
		return err
	}

	that.Turn = side.Other()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == ""
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}
