package gamestate

import (
	"errors"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/chesseval/internal/board"
)

func mustFEN(t *testing.T, fen string) (*board.Board, board.Color) {
	t.Helper()
	b, side, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b, side
}

func newClassifier(t *testing.T, opts ...Option) *Classifier {
	t.Helper()
	c, err := NewClassifier(opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		want      State
		attackers []board.Square
	}{
		{"start position", board.StartFEN, Normal, nil},
		{"corner mate by queen", "k6q/8/8/8/8/8/6P1/6RK w - - 0 1", Checkmate, []board.Square{board.H8}},
		{"corner check with escape", "k6q/8/8/8/8/8/6P1/7K w - - 0 1", Check, []board.Square{board.H8}},
		{"back rank mate", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1", Checkmate, []board.Square{board.A8}},
		{"king takes checker", "6Rk/8/8/8/8/8/8/K7 b - - 0 1", Check, []board.Square{board.G8}},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate, nil},
		{"bare kings", "8/8/8/3k4/8/8/8/4K3 w - - 0 1", InsufficientMaterial, nil},
		{"king and bishop", "8/8/8/3k4/8/8/8/2B1K3 b - - 0 1", InsufficientMaterial, nil},
		{"king and knight", "8/8/8/3k4/8/8/8/1N2K3 w - - 0 1", InsufficientMaterial, nil},
		{"king and rook", "8/8/8/3k4/8/8/8/R3K3 w - - 0 1", Normal, nil},
		{"two knights play on", "8/8/8/3k4/8/8/8/1N2K1N1 w - - 0 1", Normal, nil},
		{"mate blocked by interposition", "k7/8/8/8/8/8/3R1PPP/r5K1 w - - 0 1", Check, []board.Square{board.A1}},
		{"mate broken by capture", "k7/8/8/8/8/8/R4PPP/r5K1 w - - 0 1", Check, []board.Square{board.A1}},
		{"pinned defender cannot block", "k7/b7/8/8/8/8/5RPP/r5K1 w - - 0 1", Checkmate, []board.Square{board.A1}},
		{"double check forces king", "k7/8/8/8/8/5n2/3R1PPP/r5K1 w - - 0 1", Checkmate, []board.Square{board.A1, board.F3}},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/K7 b - - 0 1", Checkmate, []board.Square{board.F7}},
		{"stalemate with extra material", "k7/P7/K7/8/8/8/8/8 b - - 0 1", Stalemate, nil},
	}

	c := newClassifier(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, side := mustFEN(t, tt.fen)
			before := b.Clone()

			res, err := c.Classify(b, side)
			if err != nil {
				t.Fatal(err)
			}
			if res.State != tt.want {
				t.Errorf("State = %s, want %s\n%s", res.State, tt.want, b)
			}
			if res.InCheck != (len(tt.attackers) > 0) {
				t.Errorf("InCheck = %v", res.InCheck)
			}
			if len(res.Attackers) != len(tt.attackers) {
				t.Fatalf("Attackers = %v, want %v", res.Attackers, tt.attackers)
			}
			for i := range tt.attackers {
				if res.Attackers[i] != tt.attackers[i] {
					t.Errorf("Attackers = %v, want %v", res.Attackers, tt.attackers)
				}
			}
			if !b.Equal(before) {
				t.Errorf("board modified by Classify:\n%s", b)
			}
		})
	}
}

// Positions without castling rights or en passant, so "no legal moves"
// means the same thing to both libraries.
func TestClassifyMatchesDragontooth(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1",
		"r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 1",
		"k6q/8/8/8/8/8/6P1/6RK w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"6rk/5Npp/8/8/8/8/8/K7 b - - 0 1",
		"k7/b7/8/8/8/8/5RPP/r5K1 w - - 0 1",
		"k7/8/8/8/8/8/3R1PPP/r5K1 w - - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
		"8/8/8/8/8/2k5/1q6/K7 w - - 0 1",
		"8/8/8/8/8/1k6/2q5/K7 w - - 0 1",
	}
	c := newClassifier(t)
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, side := mustFEN(t, fen)
			res, err := c.Classify(b, side)
			if err != nil {
				t.Fatal(err)
			}

			ref := dragontoothmg.ParseFen(fen)
			inCheck := ref.OurKingInCheck()
			noMoves := len(ref.GenerateLegalMoves()) == 0

			if res.InCheck != inCheck {
				t.Errorf("InCheck = %v, dragontoothmg = %v", res.InCheck, inCheck)
			}
			if got := res.State == Checkmate; got != (inCheck && noMoves) {
				t.Errorf("checkmate = %v, dragontoothmg in check %v with no moves %v", got, inCheck, noMoves)
			}
			if got := res.State == Stalemate; got != (!inCheck && noMoves) {
				t.Errorf("stalemate = %v, dragontoothmg in check %v with no moves %v", got, inCheck, noMoves)
			}
		})
	}
}

func TestClassifyMissingKing(t *testing.T) {
	b, _ := mustFEN(t, "8/8/8/8/8/8/8/4K3")

	res, err := newClassifier(t).Classify(b, board.Black)
	if err != nil {
		t.Fatalf("lenient mode: %v", err)
	}
	if res.State != Normal || res.InCheck {
		t.Errorf("lenient mode result = %+v", res)
	}

	_, err = newClassifier(t, WithStrictKings()).Classify(b, board.Black)
	if !errors.Is(err, ErrNoKing) {
		t.Errorf("strict mode err = %v, want ErrNoKing", err)
	}
}

func TestClassifyInvalidSide(t *testing.T) {
	b := board.NewStartBoard()
	if _, err := newClassifier(t).Classify(b, board.NoColor); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("err = %v, want ErrInvalidSide", err)
	}
}

func TestInCheck(t *testing.T) {
	c := newClassifier(t)
	b, _ := mustFEN(t, "6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if !c.InCheck(b, board.Black) {
		t.Error("black should be in check")
	}
	if c.InCheck(b, board.White) {
		t.Error("white should not be in check")
	}
}

func TestResultCache(t *testing.T) {
	c := newClassifier(t, WithResultCache(128))
	b, side := mustFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	first, err := c.Classify(b, side)
	if err != nil {
		t.Fatal(err)
	}
	c.Wait()

	// mutating a returned result must not leak into the cache
	first.Attackers[0] = board.H1

	second, err := c.Classify(b, side)
	if err != nil {
		t.Fatal(err)
	}
	if second.State != Checkmate || second.Attackers[0] != board.A8 {
		t.Errorf("cached result = %+v", second)
	}

	hits, misses := c.CacheMetrics()
	if hits != 1 || misses != 1 {
		t.Errorf("hits=%d misses=%d, want 1 and 1", hits, misses)
	}

	// side to move is part of the key
	other, err := c.Classify(b, side.Other())
	if err != nil {
		t.Fatal(err)
	}
	if other.State == Checkmate {
		t.Error("white reported as mated from black's cached result")
	}

	c.ClearCache()
	if _, ok := c.results.Get(b.Key() + side.String()); ok {
		t.Error("entry survived ClearCache")
	}
}

func TestStateStrings(t *testing.T) {
	want := map[State]string{
		Normal:               "NORMAL",
		Check:                "CHECK",
		Checkmate:            "CHECKMATE",
		Stalemate:            "STALEMATE",
		InsufficientMaterial: "INSUFFICIENT_MATERIAL",
	}
	for s, name := range want {
		if s.String() != name {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), name)
		}
	}
	if Normal.Terminal() || Check.Terminal() || !Checkmate.Terminal() || !Stalemate.Terminal() {
		t.Error("Terminal classification wrong")
	}
}

func BenchmarkClassify(b *testing.B) {
	pos, side, _ := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w")
	c, err := NewClassifier()
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Classify(pos, side); err != nil {
			b.Fatal(err)
		}
	}
}
