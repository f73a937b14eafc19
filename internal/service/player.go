package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Player chooses the next move for side on board. Implementations must not mutate board.
type Player interface {
	SelectMove(board *entity.Board, side entity.Side) (entity.Coordinate, error)
}

// NewPlayer - builds the configured agent for a side. human is supplied by the caller
// because it owns the terminal.
func NewPlayer(kind entity.PlayerKind, rnd random.Random, human Player) (Player, error) {
	switch kind {
	case entity.KindComputer:
		return NewBotService(rnd), nil
	case entity.KindRandom:
		return NewRandomBotService(rnd), nil
	case entity.KindHuman:
		if human == nil {
			return nil, fmt.Errorf("%w: %s without input", apperror.ErrUnknownPlayerKind, kind)
		}
		return human, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayerKind, kind)
	}
}

// IsAutomated reports whether the agent picks moves without a person.
func IsAutomated(player Player) bool {
	switch player.(type) {
	case *botService, *randomBotService:
		return true
	default:
		return false
	}
}
