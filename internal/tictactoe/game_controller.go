package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type Phase int

const (
	PhaseAwaitingMove Phase = iota
	PhaseWon
	PhaseTied
	PhaseCancelled
)

// State is one node of the turn state machine. Player is the player to move
// while awaiting a move and the winner once won.
type State struct {
	Phase  Phase
	Board  entity.Board
	Player entity.Player
}

func InitialState() State {
	return State{
		Phase:  PhaseAwaitingMove,
		Board:  entity.NewBoard(),
		Player: entity.PlayerX,
	}
}

func (that State) IsTerminal() bool {
	return that.Phase != PhaseAwaitingMove
}

// Outcome - converts a terminal state to the game outcome.
func (that State) Outcome() entity.Outcome {
	switch that.Phase {
	case PhaseWon:
		return entity.Outcome{Kind: entity.OutcomeWin, Winner: that.Player, Board: that.Board}
	case PhaseTied:
		return entity.Outcome{Kind: entity.OutcomeTie, Board: that.Board}
	default:
		return entity.Outcome{Kind: entity.OutcomeCancelled, Board: that.Board}
	}
}

type console interface {
	// ReadIntent blocks until the player enters one line.
	ReadIntent() (entity.Intent, error)
	ShowBoard(board entity.Board)
	Announce(message string)
}

type GameController struct {
	logger  *slog.Logger
	console console
}

func NewGameController(logger *slog.Logger, console console) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		console: console,
	}
}

// Play - runs one game from the empty board until it is won, tied or cancelled.
func (that *GameController) Play() (entity.Outcome, error) {
	state := InitialState()

	for !state.IsTerminal() {
		next, err := that.Step(state)
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to play turn: %w", err)
		}

		state = next
	}

	outcome := state.Outcome()
	that.logger.Info("game finished", "outcome", outcome.Kind.String(), "winner", outcome.Winner.String())

	return outcome, nil
}

// Step - performs a single transition of the state machine.
func (that *GameController) Step(state State) (State, error) {
	if state.IsTerminal() {
		return state, apperror.ErrGameFinished
	}

	if winner, ok := Winner(state.Board); ok {
		that.console.Announce(fmt.Sprintf("%s won the game", winner))
		return State{Phase: PhaseWon, Board: state.Board, Player: winner}, nil
	}

	if IsFilled(state.Board) {
		that.console.Announce("Tie! The board is full.")
		return State{Phase: PhaseTied, Board: state.Board, Player: state.Player}, nil
	}

	intent, err := that.console.ReadIntent()
	if err != nil {
		return state, fmt.Errorf("failed to read move: %w", err)
	}

	switch intent.Kind {
	case entity.IntentStop:
		that.console.Announce("Game cancelled. Final board:")
		that.console.ShowBoard(state.Board)

		return State{Phase: PhaseCancelled, Board: state.Board, Player: state.Player}, nil
	case entity.IntentMove:
		board, err := applyMove(state.Board, state.Player, intent.Move)
		if err != nil {
			that.reject(state.Player, intent.Move, err)
			return state, nil
		}

		that.logger.Debug("move accepted", "player", state.Player.String(), "move", intent.Move.String())
		that.console.ShowBoard(board)

		return State{Phase: PhaseAwaitingMove, Board: board, Player: state.Player.Next()}, nil
	default:
		that.logger.Debug("input rejected", "player", state.Player.String(), "error", intent.Err)
		that.console.Announce(fmt.Sprintf("Error: %v", intent.Err))

		return state, nil
	}
}

func (that *GameController) reject(player entity.Player, move entity.Move, err error) {
	that.logger.Debug("move rejected", "player", player.String(), "move", move.String(), "error", err)

	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		that.console.Announce(fmt.Sprintf("Cannot move to %s as it is already occupied.", move))
	case errors.Is(err, apperror.ErrCellOutOfRange):
		that.console.Announce(fmt.Sprintf("Error: %s is outside the board, rows and columns are 1 to %d", move, entity.BoardSize))
	default:
		that.console.Announce(fmt.Sprintf("Error: %v", err))
	}
}

// applyMove - returns a copy of the board with the move applied; the input board is untouched.
func applyMove(board entity.Board, player entity.Player, move entity.Move) (entity.Board, error) {
	if !move.InBounds() {
		return board, fmt.Errorf("%w: %s", apperror.ErrCellOutOfRange, move)
	}

	if IsOccupied(board, move) {
		return board, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	board.Set(move.Row, move.Col, player)

	return board, nil
}
