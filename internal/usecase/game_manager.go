package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type view interface {
	AnnounceMove(side entity.Side, coordinate entity.Coordinate)
	AnnounceResult(game *entity.Game)
}

// Agent picks the move for the side to play.
type Agent interface {
	SelectMove(board *entity.Board, side entity.Side) (entity.Coordinate, error)
}

// Seat binds an agent to a side. Announce prints the agent's choices, which is what automated players want.
type Seat struct {
	Agent    Agent
	Announce bool
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	view     view
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, view view) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		view:     view,
	}
}

// NewGame - starts and stores a fresh session with X to move.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.updateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID)

	return game, nil
}

// ResumeGame - loads an interrupted session. Finished sessions are never stored.
func (that *GameManager) ResumeGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("failed to resume game %s: %w", id, err)
	}

	if game.Board == nil || !game.Turn.IsValid() {
		return nil, fmt.Errorf("failed to resume game %s: %w: turn %q", id, apperror.ErrUnknownGameStatus, game.Turn)
	}

	// the stored status is not trusted, the board decides
	game.UpdateGameState()
	if game.IsFinished() {
		that.deleteGame(ctx, game)
		return nil, fmt.Errorf("failed to resume game %s: %w", id, apperror.ErrGameFinished)
	}

	that.logger.Info("game resumed", "game_id", game.ID, "player_turn", game.Turn)

	return game, nil
}

// MakeTurn - applies one move and persists the result. A finished game is removed from the store.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, side entity.Side, coordinate entity.Coordinate) error {
	log := that.logger.With("method", "MakeTurn", "game_id", game.ID)

	if err := game.MakeTurn(side, coordinate); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("turn applied", "side", side, "coordinate", coordinate.String())

	if game.IsFinished() {
		that.deleteGame(ctx, game)
		return nil
	}

	if err := that.updateGame(ctx, game); err != nil {
		return fmt.Errorf("failed update game: %w", err)
	}

	return nil
}

// Play - asks each seat for moves until the board is decided. Cancelling ctx stops before the next turn
// and leaves the stored session resumable.
func (that *GameManager) Play(ctx context.Context, game *entity.Game, x, o Seat) (*entity.Game, error) {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	seats := map[entity.Side]Seat{
		entity.PlayerX: x,
		entity.PlayerO: o,
	}

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			log.Info("game interrupted", "player_turn", game.Turn)
			return game, fmt.Errorf("game %s interrupted: %w", game.ID, err)
		}

		side := game.Turn
		seat, ok := seats[side]
		if !ok || seat.Agent == nil {
			return game, fmt.Errorf("%w: no player seated for turn %q", apperror.ErrUnknownGameStatus, side)
		}

		coordinate, err := seat.Agent.SelectMove(game.Board.Clone(), side)
		if err != nil {
			return game, fmt.Errorf("%s failed to select a move: %w", side, err)
		}

		if err = that.MakeTurn(ctx, game, side, coordinate); err != nil {
			return game, err
		}

		if seat.Announce {
			that.view.AnnounceMove(side, coordinate)
		}
	}

	log.Info("game finished", "winner", game.Winner, "draw", game.IsDraw())
	that.view.AnnounceResult(game)

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "game_id", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			log.Debug("finished game was not stored")
			return
		}

		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}
