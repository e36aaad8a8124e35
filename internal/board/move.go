package board

// Move packs a from/to pair into 16 bits:
// bits 0-5 from square, bits 6-11 to square.
// Promotion, castling and en passant are not represented.
type Move uint16

// NoMove is the zero move (a1 to a1), never produced by generation.
const NoMove Move = 0

// NewMove creates a move from one square to another.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// String returns long algebraic notation, e.g. "e2e4".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return m.From().String() + m.To().String()
}
