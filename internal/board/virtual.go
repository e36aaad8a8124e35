package board

// WithMove plays m on b without any legality check, runs fn, and puts
// both squares back before returning. Restoration is deferred so it
// also happens if fn panics.
//
// Not reentrant with respect to b: callers must not share one Board
// across goroutines while a virtual move is in flight.
func WithMove[T any](b *Board, m Move, fn func(*Board) T) T {
	from, to := m.From(), m.To()
	savedFrom, savedTo := b.cells[from], b.cells[to]
	defer func() {
		b.cells[from] = savedFrom
		b.cells[to] = savedTo
	}()

	b.Move(from, to)
	return fn(b)
}

// LeavesKingSafe reports whether playing m keeps the mover's king out of
// attack. A side without a king has nothing to expose.
func LeavesKingSafe(b *Board, m Move) bool {
	mover := b.At(m.From())
	if mover == NoPiece {
		return false
	}
	us := mover.Color()
	return WithMove(b, m, func(b *Board) bool {
		ksq := b.KingSquare(us)
		if ksq == NoSquare {
			return true
		}
		return !IsAttacked(b, ksq, us.Other())
	})
}
