package board

// Move generation here exists to answer "does this side have a legal
// move". It covers pushes, double pushes, captures and piece moves.
// Castling and en passant are never generated; a pawn reaching the last
// rank counts as a single move regardless of promotion choice.

// PseudoLegalMoves calls yield for every pseudo-legal move of color c
// until yield returns false.
func PseudoLegalMoves(b *Board, c Color, yield func(Move) bool) {
	for from := A1; from <= H8; from++ {
		p := b.At(from)
		if p == NoPiece || p.Color() != c {
			continue
		}
		if !pieceMoves(b, from, p, yield) {
			return
		}
	}
}

// pieceMoves generates moves for the piece p on from. It returns false
// if yield asked to stop.
func pieceMoves(b *Board, from Square, p Piece, yield func(Move) bool) bool {
	us := p.Color()
	r, f := from.Rank(), from.File()

	switch p.Type() {
	case Pawn:
		fwd := us.Forward()
		if InBounds(r+fwd, f) {
			one := NewSquare(r+fwd, f)
			if b.IsEmpty(one) {
				if !yield(NewMove(from, one)) {
					return false
				}
				if from.RelativeRank(us) == 1 {
					two := NewSquare(r+2*fwd, f)
					if b.IsEmpty(two) && !yield(NewMove(from, two)) {
						return false
					}
				}
			}
		}
		for _, df := range [2]int{-1, 1} {
			if !InBounds(r+fwd, f+df) {
				continue
			}
			to := NewSquare(r+fwd, f+df)
			if t := b.At(to); t != NoPiece && t.Color() != us && !yield(NewMove(from, to)) {
				return false
			}
		}
	case Knight:
		return stepMoves(b, from, us, knightOffsets[:], yield)
	case King:
		return stepMoves(b, from, us, kingOffsets[:], yield)
	case Bishop:
		return slideMoves(b, from, us, bishopDirs[:], yield)
	case Rook:
		return slideMoves(b, from, us, rookDirs[:], yield)
	case Queen:
		if !slideMoves(b, from, us, bishopDirs[:], yield) {
			return false
		}
		return slideMoves(b, from, us, rookDirs[:], yield)
	}
	return true
}

func stepMoves(b *Board, from Square, us Color, offsets [][2]int, yield func(Move) bool) bool {
	for _, o := range offsets {
		r, f := from.Rank()+o[0], from.File()+o[1]
		if !InBounds(r, f) {
			continue
		}
		to := NewSquare(r, f)
		if t := b.At(to); t != NoPiece && t.Color() == us {
			continue
		}
		if !yield(NewMove(from, to)) {
			return false
		}
	}
	return true
}

func slideMoves(b *Board, from Square, us Color, dirs [][2]int, yield func(Move) bool) bool {
	for _, d := range dirs {
		r, f := from.Rank()+d[0], from.File()+d[1]
		for InBounds(r, f) {
			to := NewSquare(r, f)
			t := b.At(to)
			if t != NoPiece && t.Color() == us {
				break
			}
			if !yield(NewMove(from, to)) {
				return false
			}
			if t != NoPiece {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return true
}

// LegalMoves returns every pseudo-legal move of c that does not leave
// c's king attacked.
func LegalMoves(b *Board, c Color) []Move {
	var moves []Move
	PseudoLegalMoves(b, c, func(m Move) bool {
		if LeavesKingSafe(b, m) {
			moves = append(moves, m)
		}
		return true
	})
	return moves
}

// HasLegalMove reports whether c has at least one legal move. It stops
// at the first one found.
func HasLegalMove(b *Board, c Color) bool {
	found := false
	PseudoLegalMoves(b, c, func(m Move) bool {
		if LeavesKingSafe(b, m) {
			found = true
			return false
		}
		return true
	})
	return found
}

// CanReach reports whether the piece on from can legally move to to,
// using the same generation rules as LegalMoves.
func CanReach(b *Board, from, to Square) bool {
	p := b.At(from)
	if p == NoPiece {
		return false
	}
	reached := false
	pieceMoves(b, from, p, func(m Move) bool {
		if m.To() == to {
			reached = LeavesKingSafe(b, m)
			return false
		}
		return true
	})
	return reached
}
