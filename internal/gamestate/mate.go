package gamestate

import "github.com/hailam/chesseval/internal/board"

// isCheckmate decides mate for a king already known to be in check.
// Double check can only be answered by a king move.
func isCheckmate(b *board.Board, ksq board.Square, us board.Color, attackers []board.Square) bool {
	if kingCanEscape(b, ksq, us) {
		return false
	}
	if len(attackers) == 1 && checkCanBeAnswered(b, ksq, attackers[0], us) {
		return false
	}
	return true
}

// kingCanEscape tries each adjacent square that is empty or holds an
// enemy piece, with the king relocated there, and asks whether the
// opponent attacks it.
func kingCanEscape(b *board.Board, ksq board.Square, us board.Color) bool {
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			r, f := ksq.Rank()+dr, ksq.File()+df
			if !board.InBounds(r, f) {
				continue
			}
			to := board.NewSquare(r, f)
			if p := b.At(to); p != board.NoPiece && p.Color() == us {
				continue
			}
			safe := board.WithMove(b, board.NewMove(ksq, to), func(b *board.Board) bool {
				return !board.IsAttacked(b, to, us.Other())
			})
			if safe {
				return true
			}
		}
	}
	return false
}

// checkCanBeAnswered looks for a non-king piece that can capture the
// single checker or, against a sliding checker, step in between. The
// move must not expose our own king.
func checkCanBeAnswered(b *board.Board, ksq, attacker board.Square, us board.Color) bool {
	targets := []board.Square{attacker}
	if b.At(attacker).Type().Sliding() {
		targets = append(targets, board.Between(ksq, attacker)...)
	}

	for from := board.A1; from <= board.H8; from++ {
		p := b.At(from)
		if p == board.NoPiece || p.Color() != us || p.Type() == board.King {
			continue
		}
		for _, to := range targets {
			if board.CanReach(b, from, to) {
				return true
			}
		}
	}
	return false
}
