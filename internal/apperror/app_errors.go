package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrCellOutOfRange = errors.New("cell is outside the board")
	ErrMalformedMove  = errors.New("expected row,col")
	ErrInputClosed    = errors.New("input closed")
	ErrGameFinished   = errors.New("game is already finished")
)
