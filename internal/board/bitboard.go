package board

import "math/bits"

// Bitboard is a set of squares, bit n standing for Square(n).
type Bitboard uint64

const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = FileA << 7

	Empty Bitboard = 0
)

// FileMask holds one mask per file, a through h.
var FileMask = [8]Bitboard{
	FileA, FileA << 1, FileA << 2, FileA << 3,
	FileA << 4, FileA << 5, FileA << 6, FileH,
}

// AdjacentFiles returns the files on either side of file, not file itself.
func AdjacentFiles(file int) Bitboard {
	var bb Bitboard
	if file > 0 {
		bb |= FileMask[file-1]
	}
	if file < 7 {
		bb |= FileMask[file+1]
	}
	return bb
}

// SquareBB returns a bitboard with only sq set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of squares in the set.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest square in the set, NoSquare if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// FrontSpan returns every square on the ranks strictly ahead of sq from
// c's point of view, on all files. Callers mask it down to the files they
// care about.
func FrontSpan(sq Square, c Color) Bitboard {
	r := sq.Rank()
	if c == White {
		return ^Empty << (8 * (r + 1))
	}
	return ^Empty >> (8 * (8 - r))
}
