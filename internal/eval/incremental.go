package eval

import (
	"errors"
	"fmt"

	"github.com/hailam/chesseval/internal/board"
)

// ErrInconsistentMove means a move notification does not match the
// board: the destination is empty, or the captured piece has the
// mover's color.
var ErrInconsistentMove = errors.New("move notification inconsistent with board")

// Incremental keeps a running Breakdown for a board that the caller
// mutates move by move. It is not safe for concurrent use.
//
// UpdateOnMove adjusts material and positional terms by delta. Pawn
// structure is recomputed whenever a pawn moves or is captured, king
// safety after every move, and mobility after captures, so the running
// breakdown matches Evaluate for any sequence of non-promotion moves.
// After a promotion call FullRecalculate.
type Incremental struct {
	board  *board.Board
	eval   *Evaluator
	scores Breakdown
}

// NewIncremental evaluates b fully. ev may be nil.
func NewIncremental(b *board.Board, ev *Evaluator) *Incremental {
	inc := &Incremental{board: b, eval: ev}
	inc.FullRecalculate()
	return inc
}

// SetBoard switches to another board and recalculates.
func (inc *Incremental) SetBoard(b *board.Board) {
	inc.board = b
	inc.FullRecalculate()
}

// Board returns the tracked board.
func (inc *Incremental) Board() *board.Board {
	return inc.board
}

// FullRecalculate recomputes all five components from the board.
func (inc *Incremental) FullRecalculate() {
	inc.scores = inc.eval.Evaluate(inc.board)
}

// UpdateOnMove applies the effect of a move that has already been played
// on the board. captured is the piece that stood on to before the move,
// or board.NoPiece.
func (inc *Incremental) UpdateOnMove(from, to board.Square, captured board.Piece) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("move %d-%d: %w", from, to, board.ErrOutOfBounds)
	}

	moved := inc.board.At(to)
	if moved == board.NoPiece {
		return fmt.Errorf("%s-%s: destination empty: %w", from, to, ErrInconsistentMove)
	}
	us := moved.Color()
	if captured != board.NoPiece && captured.Color() == us {
		return fmt.Errorf("%s-%s: %s captured own %s: %w", from, to, us, captured.Type(), ErrInconsistentMove)
	}

	if captured != board.NoPiece {
		inc.scores.Material += us.Sign() * PieceValue(captured)
		// the captured piece's square bonus leaves with it
		inc.scores.Positional += us.Sign() * positionalBonus[to]
		inc.scores.Mobility = Mobility(inc.board)
	}

	inc.scores.Positional += us.Sign() * (positionalBonus[to] - positionalBonus[from])

	if moved.Type() == board.Pawn || captured.Type() == board.Pawn {
		inc.scores.PawnStructure = inc.eval.PawnStructure(inc.board)
	}

	inc.scores.KingSafety = KingSafety(inc.board)
	return nil
}

// Evaluate returns the current total.
func (inc *Incremental) Evaluate() int {
	return inc.scores.Total()
}

// Breakdown returns a copy of the current components.
func (inc *Incremental) Breakdown() Breakdown {
	return inc.scores
}
