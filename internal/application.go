package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// Options carries the terminal streams and the session to resume, if any.
type Options struct {
	In     io.Reader
	Out    io.Writer
	GameID string
}

// RunApp - runs one game in the terminal.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	renderer := console.NewRenderer(opts.Out)
	manager := usecase.NewGameManager(logger, gameRepo, renderer)

	human := console.NewHumanPlayer(opts.In, opts.Out)

	x, err := newSeat(conf.Players.X, agentSource(conf.Seed, entity.PlayerX), human)
	if err != nil {
		return fmt.Errorf("could not create player X: %w", err)
	}

	o, err := newSeat(conf.Players.O, agentSource(conf.Seed, entity.PlayerO), human)
	if err != nil {
		return fmt.Errorf("could not create player O: %w", err)
	}

	game, err := startGame(ctx, manager, opts.GameID)
	if err != nil {
		return err
	}

	renderer.AnnounceGame(game)

	// Play may block on human input; ctx.Done returns without waiting for it
	playErrCh := make(chan error, 1)
	go func() {
		_, playErr := manager.Play(ctx, game, x, o)
		playErrCh <- playErr
	}()

	select {
	case err = <-playErrCh:
		if err != nil {
			return fmt.Errorf("game %s stopped: %w", game.ID, err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down", "game_id", game.ID)
		return nil
	}
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Debug("using in-memory game storage")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage, conf.Redis.GameTTL), closeRepo, nil
}

// agentSource - a fixed seed gives each side its own reproducible sequence.
func agentSource(seed uint64, side entity.Side) random.Random {
	if seed == 0 {
		return random.New()
	}

	if side == entity.PlayerO {
		return random.NewSeeded(seed + 1)
	}

	return random.NewSeeded(seed)
}

func newSeat(kind string, rnd random.Random, human service.Player) (usecase.Seat, error) {
	agent, err := service.NewPlayer(entity.PlayerKind(kind), rnd, human)
	if err != nil {
		return usecase.Seat{}, err
	}

	return usecase.Seat{Agent: agent, Announce: service.IsAutomated(agent)}, nil
}

func startGame(ctx context.Context, manager *usecase.GameManager, gameID string) (*entity.Game, error) {
	if gameID == "" {
		game, err := manager.NewGame(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not start game: %w", err)
		}
		return game, nil
	}

	game, err := manager.ResumeGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("could not resume game: %w", err)
	}

	return game, nil
}
