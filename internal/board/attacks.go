package board

import "fmt"

// Direction offsets as {rank delta, file delta}.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// AttacksSquare reports whether the piece on from attacks to.
// It assumes from holds a piece; an empty source attacks nothing.
func AttacksSquare(b *Board, from, to Square) bool {
	p := b.At(from)
	if p == NoPiece || from == to {
		return false
	}

	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()

	switch p.Type() {
	case Pawn:
		return dr == p.Color().Forward() && abs(df) == 1
	case Knight:
		ar, af := abs(dr), abs(df)
		return (ar == 2 && af == 1) || (ar == 1 && af == 2)
	case King:
		return abs(dr) <= 1 && abs(df) <= 1
	case Rook:
		return (dr == 0 || df == 0) && rayClear(b, from, to)
	case Bishop:
		return abs(dr) == abs(df) && rayClear(b, from, to)
	case Queen:
		return (dr == 0 || df == 0 || abs(dr) == abs(df)) && rayClear(b, from, to)
	}
	return false
}

// Attacks is the bounds-checked form of AttacksSquare.
func Attacks(b *Board, fromRank, fromFile, toRank, toFile int) (bool, error) {
	from, err := SquareAt(fromRank, fromFile)
	if err != nil {
		return false, err
	}
	to, err := SquareAt(toRank, toFile)
	if err != nil {
		return false, err
	}
	if b.IsEmpty(from) {
		return false, fmt.Errorf("attack source %s: %w", from, ErrEmptySquare)
	}
	return AttacksSquare(b, from, to), nil
}

// rayClear checks every square strictly between from and to is empty.
// from and to must share a rank, file or diagonal; to is in range so no
// bounds check is needed along the way.
func rayClear(b *Board, from, to Square) bool {
	rs := sign(to.Rank() - from.Rank())
	fs := sign(to.File() - from.File())
	r, f := from.Rank()+rs, from.File()+fs
	for r != to.Rank() || f != to.File() {
		if !b.IsEmpty(NewSquare(r, f)) {
			return false
		}
		r += rs
		f += fs
	}
	return true
}

// IsAttacked reports whether any piece of color by attacks sq.
func IsAttacked(b *Board, sq Square, by Color) bool {
	for from := A1; from <= H8; from++ {
		p := b.At(from)
		if p != NoPiece && p.Color() == by && AttacksSquare(b, from, sq) {
			return true
		}
	}
	return false
}

// Attackers lists the squares of all pieces of color by that attack sq,
// in a1..h8 order.
func Attackers(b *Board, sq Square, by Color) []Square {
	var out []Square
	for from := A1; from <= H8; from++ {
		p := b.At(from)
		if p != NoPiece && p.Color() == by && AttacksSquare(b, from, sq) {
			out = append(out, from)
		}
	}
	return out
}

// Between returns the squares strictly between a and b when they share a
// rank, file or diagonal, and nil otherwise.
func Between(a, b Square) []Square {
	dr := b.Rank() - a.Rank()
	df := b.File() - a.File()
	if a == b || !(dr == 0 || df == 0 || abs(dr) == abs(df)) {
		return nil
	}
	rs, fs := sign(dr), sign(df)
	var out []Square
	r, f := a.Rank()+rs, a.File()+fs
	for r != b.Rank() || f != b.File() {
		out = append(out, NewSquare(r, f))
		r += rs
		f += fs
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
