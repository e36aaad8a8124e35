// Package gamestate classifies a position for the side to move as
// normal play, check, checkmate, stalemate or a dead draw by material.
package gamestate

import (
	"errors"

	"github.com/hailam/chesseval/internal/board"
)

// ErrNoKing is returned in strict mode when the side to move has no king.
var ErrNoKing = errors.New("side to move has no king")

// State is the outcome of a classification. The values are mutually
// exclusive.
type State uint8

const (
	Normal State = iota
	Check
	Checkmate
	Stalemate
	InsufficientMaterial
)

func (s State) String() string {
	switch s {
	case Normal:
		return "NORMAL"
	case Check:
		return "CHECK"
	case Checkmate:
		return "CHECKMATE"
	case Stalemate:
		return "STALEMATE"
	case InsufficientMaterial:
		return "INSUFFICIENT_MATERIAL"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the game cannot continue from this state.
// Search can treat such nodes as leaves.
func (s State) Terminal() bool {
	return s == Checkmate || s == Stalemate || s == InsufficientMaterial
}

// Result is what Classify reports for one position.
type Result struct {
	InCheck   bool
	Attackers []board.Square // pieces giving check, a1..h8 order
	State     State
}

// clone returns a copy that shares no memory with r.
func (r Result) clone() Result {
	if r.Attackers != nil {
		r.Attackers = append([]board.Square(nil), r.Attackers...)
	}
	return r
}
