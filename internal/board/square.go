// Package board holds the mailbox board shared by the classifier and the
// evaluator, plus attack detection and legal-move existence checks.
package board

import "fmt"

// Square is an index 0-63 computed as rank*8 + file.
// A1 = 0, H1 = 7, A8 = 56, H8 = 63. Rank 0 is White's back rank and
// White pawns move toward higher ranks.
type Square uint8

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63

	NoSquare Square = 64
)

// NewSquare creates a square from rank and file (both 0-indexed).
// The caller guarantees both are in range; see SquareAt for a checked form.
func NewSquare(rank, file int) Square {
	return Square(rank*8 + file)
}

// SquareAt is the checked form of NewSquare.
func SquareAt(rank, file int) (Square, error) {
	if !InBounds(rank, file) {
		return NoSquare, fmt.Errorf("rank %d file %d: %w", rank, file, ErrOutOfBounds)
	}
	return NewSquare(rank, file), nil
}

// InBounds reports whether rank and file are both in [0,8).
func InBounds(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}

// Rank returns the rank index (0 = first rank).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// File returns the file index (0 = a-file).
func (sq Square) File() int {
	return int(sq) & 7
}

// IsValid returns true for squares 0-63.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// RelativeRank returns the rank as seen from c's side of the board.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// String returns algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// ParseSquare parses algebraic notation into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, ErrOutOfBounds)
	}
	return SquareAt(int(s[1])-'1', int(s[0])-'a')
}
