package application

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - plays one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	gameConsole, err := console.New(logger, console.Options{
		HistoryFile: conf.HistoryFile,
		NoColor:     conf.NoColor,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("could not open console: %w", err)
	}

	defer func() {
		if err = gameConsole.Close(); err != nil {
			log.Error("could not close console", "error", err)
		}
	}()

	gameController := tictactoe.NewGameController(logger, gameConsole)

	log.Info("Starting game")

	outcome, err := gameController.Play()
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("Game over", "outcome", outcome.Kind.String())

	return nil
}
