package eval

import (
	"golang.org/x/exp/constraints"

	"github.com/hailam/chesseval/internal/board"
)

// Material sums piece values, White positive.
func Material(b *board.Board) int {
	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}
		score += p.Color().Sign() * pieceValues[p.Type()]
	}
	return score
}

// Positional applies the static square bonus table to every piece.
func Positional(b *board.Board) int {
	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}
		score += p.Color().Sign() * positionalBonus[sq]
	}
	return score
}

// Mobility estimates piece activity as count * weight * 2 per piece
// type. It does not count moves.
func Mobility(b *board.Board) int {
	counts := b.PieceCounts()
	score := 0
	for pt := board.Pawn; pt <= board.King; pt++ {
		diff := counts[board.White][pt] - counts[board.Black][pt]
		score += diff * mobilityWeight[pt] * mobilityScale
	}
	return score
}

// KingSafety rewards pawns next to each king and penalises kings on the
// a, b, g and h files. Each side is clamped before taking the difference.
func KingSafety(b *board.Board) int {
	return kingSafetyFor(b, board.White) - kingSafetyFor(b, board.Black)
}

func kingSafetyFor(b *board.Board, c board.Color) int {
	ksq := b.KingSquare(c)
	if ksq == board.NoSquare {
		return 0
	}
	score := pawnShield(b, ksq, c) * pawnShieldBonus
	switch ksq.File() {
	case 0, 1, 6, 7:
		score -= edgeFilePenalty
	}
	return clamp(score, -kingSafetyLimit, kingSafetyLimit)
}

// pawnShield counts friendly pawns on the squares around ksq.
func pawnShield(b *board.Board, ksq board.Square, c board.Color) int {
	own := board.NewPiece(board.Pawn, c)
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			r, f := ksq.Rank()+dr, ksq.File()+df
			if board.InBounds(r, f) && b.At(board.NewSquare(r, f)) == own {
				n++
			}
		}
	}
	return n
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
