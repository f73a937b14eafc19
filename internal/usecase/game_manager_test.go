package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/testutil"
)

var errRedisDown = errors.New("redis down")

type mockAgent struct {
	mock.Mock
}

func (m *mockAgent) SelectMove(board *entity.Board, side entity.Side) (entity.Coordinate, error) {
	args := m.Called(board, side)
	return args.Get(0).(entity.Coordinate), args.Error(1)
}

type mockView struct {
	mock.Mock
}

func (m *mockView) AnnounceMove(side entity.Side, coordinate entity.Coordinate) {
	m.Called(side, coordinate)
}

func (m *mockView) AnnounceResult(game *entity.Game) {
	m.Called(game)
}

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	return m.Called(ctx, game).Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// scriptedAgent returns the given moves in order.
func scriptedAgent(side entity.Side, moves ...entity.Coordinate) *mockAgent {
	agent := &mockAgent{}
	for _, move := range moves {
		agent.On("SelectMove", mock.AnythingOfType("*entity.Board"), side).Return(move, nil).Once()
	}
	return agent
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a new game", func(t *testing.T) {
		// Given: an empty store
		repo := repository.NewMemoryGameRepository()
		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})

		// When: a new game is started
		game, err := manager.NewGame(ctx)

		// Then: X is to move and the session is stored
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.PlayerX, game.Turn)

		stored, err := repo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Returns error when the store fails", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Game")).Return(errRedisDown).Once()
		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})

		game, err := manager.NewGame(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
		repo.AssertExpectations(t)
	})
}

func TestGameManager_ResumeGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Resumes an ongoing game", func(t *testing.T) {
		// Given: a stored game with X's first move
		repo := repository.NewMemoryGameRepository()
		game := entity.NewGame("g1")
		require.NoError(t, game.MakeTurn(entity.PlayerX, entity.NewCoordinate(1, 1)))
		require.NoError(t, repo.CreateOrUpdate(ctx, game))

		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})

		// When: it is resumed
		resumed, err := manager.ResumeGame(ctx, "g1")

		// Then: O is to move on the same board
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, resumed.Turn)
		assert.Equal(t, game.Board.Cells(), resumed.Board.Cells())
	})

	t.Run("Unknown game", func(t *testing.T) {
		manager := NewGameManager(testutil.NopLogger(), repository.NewMemoryGameRepository(), &mockView{})

		_, err := manager.ResumeGame(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Finished game cannot be resumed", func(t *testing.T) {
		repo := &mockGameRepo{}
		repo.On("GetByID", mock.Anything, "done").Return(&entity.Game{ID: "done", Status: entity.StatusFinished}, nil).Once()
		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})

		_, err := manager.ResumeGame(ctx, "done")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Stored game without a valid turn is rejected", func(t *testing.T) {
		// Given: an ongoing record whose player_turn is empty
		repo := repository.NewMemoryGameRepository()
		game := entity.NewGame("g1")
		game.Turn = ""
		require.NoError(t, repo.CreateOrUpdate(ctx, game))

		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})

		// When: it is resumed
		resumed, err := manager.ResumeGame(ctx, "g1")

		// Then: the record is refused before any agent is asked
		require.ErrorIs(t, err, apperror.ErrUnknownGameStatus)
		assert.Nil(t, resumed)
	})

	t.Run("Stored ongoing game that is already won is rejected", func(t *testing.T) {
		// Given: X holds row 1 but the record still says ongoing
		repo := repository.NewMemoryGameRepository()
		game := &entity.Game{
			ID:     "won",
			Board:  entity.NewBoard(),
			Turn:   entity.PlayerO,
			Status: entity.StatusOngoing,
		}
		for x := range entity.BoardSize {
			require.NoError(t, game.Board.Place(entity.NewCoordinate(x, 0), entity.PlayerX))
		}
		require.NoError(t, game.Board.Place(entity.NewCoordinate(0, 1), entity.PlayerO))
		require.NoError(t, repo.CreateOrUpdate(ctx, game))

		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})

		// When: it is resumed
		resumed, err := manager.ResumeGame(ctx, "won")

		// Then: it is reported as finished and dropped from the store
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Nil(t, resumed)

		_, err = repo.GetByID(ctx, "won")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Stored ongoing game with a full board is rejected", func(t *testing.T) {
		repo := repository.NewMemoryGameRepository()
		game := entity.NewGame("full")
		// X: A1 B1 C2 A3 C3, O: C1 A2 B2 B3, no line
		for _, move := range []entity.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 2, Y: 2}} {
			require.NoError(t, game.Board.Place(move, entity.PlayerX))
		}
		for _, move := range []entity.Coordinate{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}} {
			require.NoError(t, game.Board.Place(move, entity.PlayerO))
		}
		require.NoError(t, repo.CreateOrUpdate(ctx, game))

		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})

		_, err := manager.ResumeGame(ctx, "full")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists the updated game", func(t *testing.T) {
		repo := repository.NewMemoryGameRepository()
		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)

		require.NoError(t, manager.MakeTurn(ctx, game, entity.PlayerX, entity.NewCoordinate(0, 0)))

		stored, err := repo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, stored.Turn)
		assert.False(t, stored.Board.IsLegal(entity.NewCoordinate(0, 0)))
	})

	t.Run("Illegal move is not persisted", func(t *testing.T) {
		repo := &mockGameRepo{}
		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})
		game := entity.NewGame("g1")
		require.NoError(t, game.MakeTurn(entity.PlayerX, entity.NewCoordinate(0, 0)))

		err := manager.MakeTurn(ctx, game, entity.PlayerO, entity.NewCoordinate(0, 0))

		var illegal *entity.IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Finishing move deletes the game", func(t *testing.T) {
		// Given: X holds A1 and B1 in a stored game
		repo := repository.NewMemoryGameRepository()
		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)
		for _, move := range []entity.Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}} {
			require.NoError(t, manager.MakeTurn(ctx, game, game.Turn, move))
		}

		// When: X completes the row
		require.NoError(t, manager.MakeTurn(ctx, game, entity.PlayerX, entity.NewCoordinate(2, 0)))

		// Then: the game is finished and no longer stored
		assert.Equal(t, entity.PlayerX, game.Winner)
		_, err = repo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameManager_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays to a win and announces automated moves", func(t *testing.T) {
		// Given: X plays the top row, O plays the middle row
		repo := repository.NewMemoryGameRepository()
		view := &mockView{}
		manager := NewGameManager(testutil.NopLogger(), repo, view)
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)

		x := scriptedAgent(entity.PlayerX, entity.NewCoordinate(0, 0), entity.NewCoordinate(1, 0), entity.NewCoordinate(2, 0))
		o := scriptedAgent(entity.PlayerO, entity.NewCoordinate(0, 1), entity.NewCoordinate(1, 1))

		view.On("AnnounceMove", entity.PlayerX, mock.Anything).Return().Times(3)
		view.On("AnnounceResult", mock.AnythingOfType("*entity.Game")).Return().Once()

		// When: the game is played
		finished, err := manager.Play(ctx, game, Seat{Agent: x, Announce: true}, Seat{Agent: o})

		// Then: X wins, only X's moves were announced and the session is gone
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, finished.Winner)
		x.AssertExpectations(t)
		o.AssertExpectations(t)
		view.AssertExpectations(t)
		view.AssertNotCalled(t, "AnnounceMove", entity.PlayerO, mock.Anything)

		_, err = repo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Plays to a draw", func(t *testing.T) {
		view := &mockView{}
		manager := NewGameManager(testutil.NopLogger(), repository.NewMemoryGameRepository(), view)
		game := entity.NewGame("draw")

		// X: A1 B1 C2 A3 C3, O: C1 A2 B2 B3
		x := scriptedAgent(entity.PlayerX,
			entity.NewCoordinate(0, 0), entity.NewCoordinate(1, 0), entity.NewCoordinate(2, 1),
			entity.NewCoordinate(0, 2), entity.NewCoordinate(2, 2))
		o := scriptedAgent(entity.PlayerO,
			entity.NewCoordinate(2, 0), entity.NewCoordinate(0, 1), entity.NewCoordinate(1, 1),
			entity.NewCoordinate(1, 2))
		view.On("AnnounceResult", mock.AnythingOfType("*entity.Game")).Return().Once()

		finished, err := manager.Play(ctx, game, Seat{Agent: x}, Seat{Agent: o})

		require.NoError(t, err)
		assert.True(t, finished.IsDraw())
		view.AssertExpectations(t)
	})

	t.Run("Agent error stops the game and keeps it resumable", func(t *testing.T) {
		// Given: X moves once, then O's input is closed
		repo := repository.NewMemoryGameRepository()
		manager := NewGameManager(testutil.NopLogger(), repo, &mockView{})
		game, err := manager.NewGame(ctx)
		require.NoError(t, err)

		x := scriptedAgent(entity.PlayerX, entity.NewCoordinate(1, 1))
		o := &mockAgent{}
		o.On("SelectMove", mock.Anything, entity.PlayerO).Return(entity.Coordinate{}, apperror.ErrInputClosed).Once()

		// When: the game is played
		_, err = manager.Play(ctx, game, Seat{Agent: x}, Seat{Agent: o})

		// Then: the error surfaces and O can continue later
		require.ErrorIs(t, err, apperror.ErrInputClosed)

		stored, err := repo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, stored.Turn)
	})

	t.Run("Agent proposing an illegal move is an error", func(t *testing.T) {
		manager := NewGameManager(testutil.NopLogger(), repository.NewMemoryGameRepository(), &mockView{})
		game := entity.NewGame("g1")

		x := scriptedAgent(entity.PlayerX, entity.NewCoordinate(1, 1))
		o := scriptedAgent(entity.PlayerO, entity.NewCoordinate(1, 1))

		_, err := manager.Play(ctx, game, Seat{Agent: x}, Seat{Agent: o})

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Invalid turn returns an error instead of calling a missing agent", func(t *testing.T) {
		manager := NewGameManager(testutil.NopLogger(), repository.NewMemoryGameRepository(), &mockView{})
		game := entity.NewGame("g1")
		game.Turn = "Z"

		_, err := manager.Play(ctx, game, Seat{Agent: &mockAgent{}}, Seat{Agent: &mockAgent{}})

		require.ErrorIs(t, err, apperror.ErrUnknownGameStatus)
	})

	t.Run("Cancelled context stops before the next turn", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		manager := NewGameManager(testutil.NopLogger(), repository.NewMemoryGameRepository(), &mockView{})
		x := &mockAgent{}

		game, err := manager.Play(cancelled, entity.NewGame("g1"), Seat{Agent: x}, Seat{Agent: &mockAgent{}})

		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, game.IsOngoing())
		x.AssertNotCalled(t, "SelectMove", mock.Anything, mock.Anything)
	})
}
