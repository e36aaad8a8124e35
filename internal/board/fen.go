package board

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN reads the piece placement and side-to-move fields of a FEN
// string. Castling, en passant and clocks are accepted but ignored; a
// missing side-to-move field defaults to White.
func ParseFEN(fen string) (*Board, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, NoColor, fmt.Errorf("empty string: %w", ErrInvalidFEN)
	}

	b := New()
	if err := parsePlacement(b, parts[0]); err != nil {
		return nil, NoColor, err
	}

	side := White
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
		case "b":
			side = Black
		default:
			return nil, NoColor, fmt.Errorf("side to move %q: %w", parts[1], ErrInvalidFEN)
		}
	}
	return b, side, nil
}

func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("need 8 ranks, got %d: %w", len(ranks), ErrInvalidFEN)
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d: %w", rank+1, ErrInvalidFEN)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := PieceFromChar(c)
			if p == NoPiece {
				return fmt.Errorf("piece character %q: %w", c, ErrInvalidFEN)
			}
			b.Set(NewSquare(rank, file), p)
			file++
		}
		if file != 8 {
			return fmt.Errorf("rank %d has %d squares: %w", rank+1, file, ErrInvalidFEN)
		}
	}
	return nil
}

// ParseGrid builds a board from eight rows of single-character codes,
// the first row being rank 8. Uppercase letters are White, lowercase
// Black, and '.', ' ' or '-' mark an empty square.
func ParseGrid(rows []string) (*Board, error) {
	if len(rows) != 8 {
		return nil, fmt.Errorf("need 8 rows, got %d: %w", len(rows), ErrInvalidGrid)
	}
	b := New()
	for i, row := range rows {
		if len(row) != 8 {
			return nil, fmt.Errorf("row %d has %d cells: %w", i, len(row), ErrInvalidGrid)
		}
		rank := 7 - i
		for file := 0; file < 8; file++ {
			c := row[file]
			if c == '.' || c == ' ' || c == '-' {
				continue
			}
			p := PieceFromChar(c)
			if p == NoPiece {
				return nil, fmt.Errorf("row %d: piece character %q: %w", i, c, ErrInvalidGrid)
			}
			b.Set(NewSquare(rank, file), p)
		}
	}
	return b, nil
}

// FEN renders the placement and side-to-move fields. The remaining
// fields are emitted as "- - 0 1".
func (b *Board) FEN(side Color) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.At(NewSquare(rank, file))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if side == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
