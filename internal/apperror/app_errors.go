package apperror

import "errors"

var (
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrInvalidCommand    = errors.New("not a command")
	ErrInputStream       = errors.New("input stream failure")
	ErrBotNotImplemented = errors.New("automated opponent is not implemented")
	ErrIllegalBotMove    = errors.New("automated opponent chose an illegal cell")

	ErrUnknownFirstTurn  = errors.New("unknown first turn policy")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidOutOf      = errors.New("out-of must be at least 1")
)
