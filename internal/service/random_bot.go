package service

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type randomBotService struct {
	random random.Random
}

// NewRandomBotService - picks a uniformly random legal move.
func NewRandomBotService(rnd random.Random) Player {
	return &randomBotService{random: rnd}
}

func (that *randomBotService) SelectMove(board *entity.Board, _ entity.Side) (entity.Coordinate, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Coordinate{}, apperror.ErrNoLegalMoves
	}

	return moves[that.random.Intn(len(moves))], nil
}
