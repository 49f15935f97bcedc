package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const stopCommand = "stop"

// ParseIntent - interprets one input line: "stop", or a 1-based "row,col" pair.
// Coordinates are converted to zero-based but not range checked.
func ParseIntent(line string) entity.Intent {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if line == stopCommand {
		return entity.StopIntent()
	}

	move, err := parseMove(line)
	if err != nil {
		return entity.ParseFailure(err)
	}

	return entity.MoveIntent(move.Row, move.Col)
}

func parseMove(line string) (entity.Move, error) {
	pair := strings.Split(line, ",")
	if len(pair) < 2 {
		return entity.Move{}, fmt.Errorf("%w, got %q", apperror.ErrMalformedMove, line)
	}

	row, err := parseCoordinate(pair[0])
	if err != nil {
		return entity.Move{}, err
	}

	col, err := parseCoordinate(pair[1])
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Row: row - 1, Col: col - 1}, nil
}

// parseCoordinate - parses an unsigned decimal token; a single leading '+' is allowed.
func parseCoordinate(token string) (int, error) {
	value, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, 32)
	if err != nil {
		return 0, err
	}

	return int(value), nil
}
