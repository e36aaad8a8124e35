package board

import (
	"fmt"
	"strings"
)

// Board is an 8x8 mailbox. The zero value is an empty board.
//
// Cells store piece+1 so that a zero cell means "empty"; use At and Set
// rather than touching cells directly.
type Board struct {
	cells [64]uint8
}

// New returns an empty board.
func New() *Board {
	return &Board{}
}

// NewStartBoard returns the standard initial setup.
func NewStartBoard() *Board {
	b, _, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// At returns the piece on sq, or NoPiece.
func (b *Board) At(sq Square) Piece {
	c := b.cells[sq]
	if c == 0 {
		return NoPiece
	}
	return Piece(c - 1)
}

// Get is the bounds-checked lookup by rank and file.
func (b *Board) Get(rank, file int) (Piece, error) {
	sq, err := SquareAt(rank, file)
	if err != nil {
		return NoPiece, err
	}
	return b.At(sq), nil
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.cells[sq] == 0
}

// Set places p on sq. Setting NoPiece empties the square.
func (b *Board) Set(sq Square, p Piece) {
	if p >= NoPiece {
		b.cells[sq] = 0
		return
	}
	b.cells[sq] = uint8(p) + 1
}

// Remove empties sq and returns what was there.
func (b *Board) Remove(sq Square) Piece {
	p := b.At(sq)
	b.cells[sq] = 0
	return p
}

// Move relocates the piece on from to to, returning the piece that was
// on to. It does no legality checking.
func (b *Board) Move(from, to Square) Piece {
	captured := b.At(to)
	b.cells[to] = b.cells[from]
	b.cells[from] = 0
	return captured
}

// Clear empties every square.
func (b *Board) Clear() {
	b.cells = [64]uint8{}
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells
}

// Pieces returns the set of squares holding pieces of type pt and color c.
func (b *Board) Pieces(c Color, pt PieceType) Bitboard {
	want := uint8(NewPiece(pt, c)) + 1
	var bb Bitboard
	for sq, cell := range b.cells {
		if cell == want {
			bb |= SquareBB(Square(sq))
		}
	}
	return bb
}

// Pawns is shorthand for Pieces(c, Pawn).
func (b *Board) Pawns(c Color) Bitboard {
	return b.Pieces(c, Pawn)
}

// KingSquare returns the first king of color c in a1..h8 order, or
// NoSquare if there is none.
func (b *Board) KingSquare(c Color) Square {
	want := uint8(NewPiece(King, c)) + 1
	for sq, cell := range b.cells {
		if cell == want {
			return Square(sq)
		}
	}
	return NoSquare
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for _, cell := range b.cells {
		if cell != 0 {
			n++
		}
	}
	return n
}

// PieceCounts returns per-color, per-type piece counts.
func (b *Board) PieceCounts() (counts [2][6]int) {
	for _, cell := range b.cells {
		if cell == 0 {
			continue
		}
		p := Piece(cell - 1)
		counts[p.Color()][p.Type()]++
	}
	return counts
}

// Key returns a compact string identifying the piece placement.
// Two boards have equal keys iff Equal reports true.
func (b *Board) Key() string {
	return string(b.cells[:])
}

// String draws the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sb.WriteString(b.At(NewSquare(rank, file)).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
