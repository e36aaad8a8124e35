// Package eval scores a board in centipawns, positive favouring White.
//
// The score is split into five independent components (material,
// positional, mobility, pawn structure, king safety). Pawn structure can
// be served from a PawnTable, and Incremental keeps a running breakdown
// that is adjusted move by move.
package eval

import "github.com/hailam/chesseval/internal/board"

// Material values in centipawns, indexed by board.PieceType.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// PieceValue returns the absolute material value of p, 0 for NoPiece.
func PieceValue(p board.Piece) int {
	if p == board.NoPiece {
		return 0
	}
	return pieceValues[p.Type()]
}

// Mobility is approximated from piece counts rather than move counts.
var mobilityWeight = [6]int{0, 3, 3, 4, 5, 0} // Pawn, Knight, Bishop, Rook, Queen, King

const mobilityScale = 2

// Positional bonuses
const (
	centerBonus      = 10 // files c-f, ranks 3-6
	developmentBonus = 5  // second rank from either edge
)

// Pawn structure terms, per side before clamping.
const (
	doubledPawnPenalty  = 15
	isolatedPawnPenalty = 20
	passedPawnBase      = 25
	passedPawnPerRank   = 5
	pawnSideLimit       = 100
)

// King safety terms, per side before clamping.
const (
	pawnShieldBonus = 10
	edgeFilePenalty = 5
	kingSafetyLimit = 50
)

// positionalBonus is symmetric under a rank flip, so the same table
// serves both colors.
var positionalBonus [64]int

func init() {
	for sq := board.A1; sq <= board.H8; sq++ {
		r, f := sq.Rank(), sq.File()
		bonus := 0
		if f >= 2 && f <= 5 && r >= 2 && r <= 5 {
			bonus += centerBonus
		}
		if r == 1 || r == 6 {
			bonus += developmentBonus
		}
		positionalBonus[sq] = bonus
	}
}

// PositionalBonus returns the static square bonus used by Positional.
func PositionalBonus(sq board.Square) int {
	return positionalBonus[sq]
}
