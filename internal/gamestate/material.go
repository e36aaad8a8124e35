package gamestate

import "github.com/hailam/chesseval/internal/board"

// insufficientMaterial covers K vs K and K + one minor vs K.
// K+B vs K+B on the same colour, K+N+N vs K and similar draws are not
// recognised.
func insufficientMaterial(b *board.Board) bool {
	extra := board.NoPiece
	n := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.At(sq)
		if p == board.NoPiece || p.Type() == board.King {
			continue
		}
		n++
		if n > 1 {
			return false
		}
		extra = p
	}
	return n == 0 || extra.Type().Minor()
}
