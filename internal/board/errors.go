package board

import "errors"

var (
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	ErrEmptySquare = errors.New("square is empty")
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrInvalidGrid = errors.New("invalid board grid")
)
