package eval

import "github.com/hailam/chesseval/internal/board"

// SidePawns is the pawn-structure analysis for one color.
type SidePawns struct {
	Count    int
	Doubled  int // pawns beyond the first on each file
	Isolated int
	Passed   int
	Raw      int // unclamped subtotal
	Score    int // Raw clamped to [-100, 100]
}

// PawnReport holds both sides' pawn analysis plus the king shield counts
// that are cached alongside it.
type PawnReport struct {
	Side   [2]SidePawns // indexed by board.Color
	Shield [2]int       // friendly pawns adjacent to each king
}

// Score is White's clamped subtotal minus Black's.
func (r PawnReport) Score() int {
	return r.Side[board.White].Score - r.Side[board.Black].Score
}

// Entry converts the report to what the pawn table stores.
func (r PawnReport) Entry() PawnEntry {
	return PawnEntry{
		Score:         r.Score(),
		PassedWhite:   r.Side[board.White].Passed,
		PassedBlack:   r.Side[board.Black].Passed,
		ShieldWhite:   r.Shield[board.White],
		ShieldBlack:   r.Shield[board.Black],
		IsolatedWhite: r.Side[board.White].Isolated,
		IsolatedBlack: r.Side[board.Black].Isolated,
	}
}

// PawnStructure scores doubled, isolated and passed pawns. See AnalyzePawns.
func PawnStructure(b *board.Board) int {
	return AnalyzePawns(b).Score()
}

// AnalyzePawns runs the pawn-structure analysis for both sides.
//
// Per side: -15 for every pawn beyond the first on a file, -20 for each
// pawn with no friendly pawn on an adjacent file, and 25 + 5*advancement
// for each passed pawn. A pawn is passed when no enemy pawn stands on its
// file or an adjacent one anywhere ahead of it. Advancement counts ranks
// from the pawn's starting rank.
func AnalyzePawns(b *board.Board) PawnReport {
	var r PawnReport
	pawns := [2]board.Bitboard{b.Pawns(board.White), b.Pawns(board.Black)}

	for c := board.White; c <= board.Black; c++ {
		r.Side[c] = analyzeSide(pawns[c], pawns[c.Other()], c)
		if ksq := b.KingSquare(c); ksq != board.NoSquare {
			r.Shield[c] = pawnShield(b, ksq, c)
		}
	}
	return r
}

func analyzeSide(own, enemy board.Bitboard, c board.Color) SidePawns {
	s := SidePawns{Count: own.PopCount()}

	for file := 0; file < 8; file++ {
		if n := (own & board.FileMask[file]).PopCount(); n > 1 {
			s.Doubled += n - 1
		}
	}

	for bb := own; bb != 0; {
		sq := bb.PopLSB()
		file := sq.File()
		adjacent := board.AdjacentFiles(file)

		if own&adjacent == 0 {
			s.Isolated++
		}

		if enemy&(board.FileMask[file]|adjacent)&board.FrontSpan(sq, c) == 0 {
			s.Passed++
			advancement := max(sq.RelativeRank(c)-1, 0)
			s.Raw += passedPawnBase + passedPawnPerRank*advancement
		}
	}

	s.Raw -= doubledPawnPenalty*s.Doubled + isolatedPawnPenalty*s.Isolated
	s.Score = clamp(s.Raw, -pawnSideLimit, pawnSideLimit)
	return s
}
