package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrInvalidCell        = errors.New("invalid cell value")
	ErrNoLegalMoves       = errors.New("no legal moves")
	ErrGameNotFound       = errors.New("game not found")
	ErrUnknownPlayerKind  = errors.New("unknown player kind")
	ErrInputClosed        = errors.New("input closed")
	ErrUnknownGameStatus  = errors.New("unknown game status")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
