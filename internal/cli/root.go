package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

type flags struct {
	configPath string
	playerX    string
	playerO    string
	seed       uint64
	gameID     string
	logLevel   string
}

// NewRootCmd creates the tictactoe command. Flags override the config file and environment.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal",
		Long: `tictactoe plays a game of 3x3 tic-tac-toe on the terminal.

Each side is a human, the heuristic computer player or a random player.
Moves are entered as a column letter and a row number, for example B2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(f.configPath)
			if err != nil {
				return err
			}

			applyFlags(cmd, f, conf)
			if err = conf.Validate(); err != nil {
				return err
			}

			return app.RunApp(cmd.Context(), NewLogger(conf.LogLevel, errOut), conf, app.Options{
				In:     in,
				Out:    out,
				GameID: f.gameID,
			})
		},
		SilenceUsage: true,
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVar(&f.configPath, "config", "config.yml", "Config file path (optional)")
	rootCmd.Flags().StringVar(&f.playerX, "x", "", "Player X: human, computer, random")
	rootCmd.Flags().StringVar(&f.playerO, "o", "", "Player O: human, computer, random")
	rootCmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for computer players, 0 picks one at random")
	rootCmd.Flags().StringVar(&f.gameID, "game", "", "Resume a stored game by id")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return rootCmd
}

func applyFlags(cmd *cobra.Command, f *flags, conf *config.Config) {
	if cmd.Flags().Changed("x") {
		conf.Players.X = f.playerX
	}
	if cmd.Flags().Changed("o") {
		conf.Players.O = f.playerO
	}
	if cmd.Flags().Changed("seed") {
		conf.Seed = f.seed
	}
	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = f.logLevel
	}
}

// NewLogger - JSON logs on errOut so the board owns stdout.
func NewLogger(logLevel string, errOut io.Writer) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(errOut, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command on the given streams.
func Execute(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	if err := NewRootCmd(in, out, errOut).ExecuteContext(ctx); err != nil {
		return fmt.Errorf("tictactoe: %w", err)
	}

	return nil
}
