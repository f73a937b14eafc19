package service

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Tier is the heuristic priority level that produced a move.
type Tier string

const (
	TierWin       Tier = "win"
	TierBlock     Tier = "block"
	TierFork      Tier = "fork"
	TierBlockFork Tier = "block-fork"
	TierFallback  Tier = "fallback"
)

// a fork needs more than this many threats after the first placement
const forkThreshold = 1

type BotService interface {
	Player
	SelectMoveWithTier(board *entity.Board, side entity.Side) (entity.Coordinate, Tier, error)
}

type botService struct {
	random random.Random
}

// NewBotService - the heuristic agent. rnd orders the candidate scan, which decides ties inside a tier.
func NewBotService(rnd random.Random) BotService {
	return &botService{random: rnd}
}

func (that *botService) SelectMove(board *entity.Board, side entity.Side) (entity.Coordinate, error) {
	coordinate, _, err := that.SelectMoveWithTier(board, side)
	return coordinate, err
}

// SelectMoveWithTier - win now, block a win, fork, block a fork, then take the first candidate.
func (that *botService) SelectMoveWithTier(board *entity.Board, side entity.Side) (entity.Coordinate, Tier, error) {
	candidates := that.candidates(board)
	if len(candidates) == 0 {
		return entity.Coordinate{}, "", apperror.ErrNoLegalMoves
	}

	opponent := side.Other()

	if coordinate, ok := findWinningMove(board, candidates, side); ok {
		return coordinate, TierWin, nil
	}

	if coordinate, ok := findWinningMove(board, candidates, opponent); ok {
		return coordinate, TierBlock, nil
	}

	if coordinate, ok := findForkingMove(board, candidates, side); ok {
		return coordinate, TierFork, nil
	}

	if coordinate, ok := findForkingMove(board, candidates, opponent); ok {
		return coordinate, TierBlockFork, nil
	}

	return candidates[0], TierFallback, nil
}

// candidates - legal moves in canonical order, then shuffled by the injected source.
func (that *botService) candidates(board *entity.Board) []entity.Coordinate {
	moves := board.LegalMoves()

	that.random.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	return moves
}

// findWinningMove returns the first candidate that wins immediately for side.
func findWinningMove(board *entity.Board, candidates []entity.Coordinate, side entity.Side) (entity.Coordinate, bool) {
	for _, coordinate := range candidates {
		if winsWith(board, coordinate, side) {
			return coordinate, true
		}
	}

	return entity.Coordinate{}, false
}

// findForkingMove returns the first candidate after which side has more than
// one distinct immediate win among the remaining candidates.
func findForkingMove(board *entity.Board, candidates []entity.Coordinate, side entity.Side) (entity.Coordinate, bool) {
	for i, first := range candidates {
		trial := board.Clone()
		if err := trial.Place(first, side); err != nil {
			continue
		}

		threats := 0
		for j, second := range candidates {
			if i == j {
				continue
			}

			if winsWith(trial, second, side) {
				threats++
			}
		}

		if threats > forkThreshold {
			return first, true
		}
	}

	return entity.Coordinate{}, false
}

// winsWith simulates side playing coordinate on a disposable clone.
func winsWith(board *entity.Board, coordinate entity.Coordinate, side entity.Side) bool {
	trial := board.Clone()
	if err := trial.Place(coordinate, side); err != nil {
		return false
	}

	winner, ok := trial.Winner()

	return ok && winner == side
}
