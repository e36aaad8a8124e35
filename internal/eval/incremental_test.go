package eval

import (
	"errors"
	"testing"

	"github.com/hailam/chesseval/internal/board"
)

func TestIncrementalMatchesFull(t *testing.T) {
	moves := []struct {
		from, to board.Square
	}{
		{board.E2, board.E4},
		{board.D7, board.D5},
		{board.E4, board.D5}, // pawn takes pawn
		{board.D8, board.D5}, // queen takes pawn
		{board.B1, board.C3},
		{board.D5, board.A2}, // queen takes pawn
		{board.A1, board.A2}, // rook takes queen
		{board.E8, board.D7}, // king walk
		{board.C3, board.D5},
		{board.C7, board.C6},
		{board.D5, board.C7}, // knight into the shield
		{board.D7, board.C7}, // king takes knight
	}

	for _, withTable := range []bool{false, true} {
		var opts []Option
		if withTable {
			// a single slot forces constant collisions
			opts = append(opts, WithPawnTable(NewPawnTableWithCapacity(1)))
		}
		ev := NewEvaluator(opts...)
		b := board.NewStartBoard()
		inc := NewIncremental(b, ev)

		for i, m := range moves {
			captured := b.Move(m.from, m.to)
			if err := inc.UpdateOnMove(m.from, m.to, captured); err != nil {
				t.Fatalf("move %d %s-%s: %v", i, m.from, m.to, err)
			}
			want := ev.Evaluate(b)
			if got := inc.Breakdown(); got != want {
				t.Fatalf("table=%v after move %d %s-%s:\n got %+v\nwant %+v", withTable, i, m.from, m.to, got, want)
			}
			if inc.Evaluate() != want.Total() {
				t.Fatalf("Evaluate = %d, want %d", inc.Evaluate(), want.Total())
			}
		}
	}
}

func TestIncrementalCaptureAdjustsMaterial(t *testing.T) {
	b, _, err := board.ParseFEN("4k3/8/8/3q4/4P3/8/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	inc := NewIncremental(b, nil)
	before := inc.Breakdown().Material

	captured := b.Move(board.E4, board.D5)
	if err := inc.UpdateOnMove(board.E4, board.D5, captured); err != nil {
		t.Fatal(err)
	}
	if got := inc.Breakdown().Material - before; got != QueenValue {
		t.Errorf("material delta = %d, want %d", got, QueenValue)
	}
}

func TestIncrementalErrors(t *testing.T) {
	b := board.NewStartBoard()
	inc := NewIncremental(b, NewEvaluator())
	before := inc.Breakdown()

	tests := []struct {
		name     string
		from, to board.Square
		captured board.Piece
		want     error
	}{
		{"destination empty", board.E2, board.E4, board.NoPiece, ErrInconsistentMove},
		{"captured own piece", board.E1, board.E2, board.WhiteQueen, ErrInconsistentMove},
		{"off board", board.NoSquare, board.E4, board.NoPiece, board.ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := inc.UpdateOnMove(tt.from, tt.to, tt.captured)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if inc.Breakdown() != before {
				t.Error("scores changed on rejected update")
			}
		})
	}
}

func TestIncrementalSetBoard(t *testing.T) {
	inc := NewIncremental(board.NewStartBoard(), nil)
	b, _, err := board.ParseFEN("4k3/8/8/8/8/8/8/RN2K3 w")
	if err != nil {
		t.Fatal(err)
	}
	inc.SetBoard(b)
	if inc.Board() != b {
		t.Error("Board() does not return the new board")
	}
	if want := NewEvaluator().Evaluate(b); inc.Breakdown() != want {
		t.Errorf("after SetBoard = %+v, want %+v", inc.Breakdown(), want)
	}
}
