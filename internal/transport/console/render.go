package console

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	cellSeparator = "|"
	rowSeparator  = "\n-+-+-\n"

	colorX = "1"
	colorO = "4"
)

// RenderBoard - draws the board as three rows of glyphs. Under the Ascii profile
// the glyphs are plain " ", "X" and "O".
func RenderBoard(board entity.Board, output *termenv.Output) string {
	rows := board.Rows()
	lines := make([]string, 0, len(rows))

	for _, row := range rows {
		glyphs := make([]string, 0, len(row))
		for _, cell := range row {
			glyphs = append(glyphs, glyph(cell, output))
		}
		lines = append(lines, strings.Join(glyphs, cellSeparator))
	}

	return strings.Join(lines, rowSeparator)
}

func glyph(cell entity.Cell, output *termenv.Output) string {
	player, ok := cell.Occupant()
	if !ok {
		return " "
	}

	color := colorX
	if player == entity.PlayerO {
		color = colorO
	}

	return output.String(player.String()).Foreground(output.Color(color)).Bold().String()
}
