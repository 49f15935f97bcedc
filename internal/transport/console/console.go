package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const Prompt = `Please enter location (Row,Col) as "1,2" or 'stop': `

type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Console reads player intents line by line and prints the board and game messages.
type Console struct {
	logger *slog.Logger
	reader lineReader
	out    io.Writer
	output *termenv.Output

	// echoPrompt is set when readline runs non-interactively and does not print the prompt itself.
	echoPrompt bool
}

type Options struct {
	HistoryFile string
	NoColor     bool
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// New - opens a readline-backed console on the given streams.
func New(logger *slog.Logger, opts Options) (*Console, error) {
	readlineConfig := &readline.Config{
		Prompt:          Prompt,
		HistoryFile:     opts.HistoryFile,
		InterruptPrompt: "^C",
		Stdin:           opts.Stdin,
		Stdout:          opts.Stdout,

		FuncFilterInputRune: filterInput,
	}

	instance, err := readline.NewEx(readlineConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open readline: %w", err)
	}

	profile := termenv.Ascii
	if !opts.NoColor {
		profile = termenv.NewOutput(opts.Stdout).EnvColorProfile()
	}

	// NewEx has filled in FuncIsTerminal.
	interactive := readlineConfig.ForceUseInteractive || readlineConfig.FuncIsTerminal()

	return newConsole(logger, instance, instance.Stdout(), profile, !interactive), nil
}

func newConsole(logger *slog.Logger, reader lineReader, out io.Writer, profile termenv.Profile, echoPrompt bool) *Console {
	return &Console{
		logger:     logger.With("component", "console"),
		reader:     reader,
		out:        out,
		output:     termenv.NewOutput(out, termenv.WithProfile(profile)),
		echoPrompt: echoPrompt,
	}
}

func filterInput(r rune) (rune, bool) {
	// block CtrlZ
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}

// ReadIntent - blocks for one line of input. Ctrl-C on an empty line stops the game;
// end of input or a read failure is reported as ErrInputClosed.
func (that *Console) ReadIntent() (entity.Intent, error) {
	for {
		if that.echoPrompt {
			that.print(Prompt)
		}

		line, err := that.reader.Readline()

		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return entity.StopIntent(), nil
			}
			continue
		case err != nil:
			that.logger.Debug("input stream closed", "error", err)
			return entity.Intent{}, fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}

		return ParseIntent(line), nil
	}
}

func (that *Console) ShowBoard(board entity.Board) {
	that.println(RenderBoard(board, that.output))
}

func (that *Console) Announce(message string) {
	that.println(message)
}

func (that *Console) Close() error {
	if err := that.reader.Close(); err != nil {
		return fmt.Errorf("failed to close readline: %w", err)
	}

	return nil
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}
