package board

import (
	"errors"
	"testing"
)

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
		"8/8/8/3k4/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		b, side, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(side); got != fen {
			t.Errorf("FEN round trip:\n got %s\nwant %s", got, fen)
		}
	}
}

func TestParseFENDefaultsToWhite(t *testing.T) {
	_, side, err := ParseFEN("8/8/8/8/8/8/8/K6k")
	if err != nil {
		t.Fatal(err)
	}
	if side != White {
		t.Errorf("side = %s, want White", side)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8 w",
		"9/8/8/8/8/8/8/8 w",
		"8/8/8/8/8/8/8/7 w",
		"8/8/8/8/8/8/8/44x w",
		"8/8/8/8/8/8/8/8 x",
	}
	for _, fen := range bad {
		if _, _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) err = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestParseGrid(t *testing.T) {
	b, err := ParseGrid([]string{
		"r...k..r",
		"pppp.ppp",
		"........",
		"....p...",
		"....P...",
		"........",
		"PPPP PPP",
		"R---K--R",
	})
	if err != nil {
		t.Fatal(err)
	}

	want, _, _ := ParseFEN("r3k2r/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/R3K2R w")
	if !b.Equal(want) {
		t.Errorf("grid board:\n%s\nwant:\n%s", b, want)
	}

	if _, err := ParseGrid([]string{"........"}); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("short grid err = %v", err)
	}
	rows := []string{"........", "........", "........", "...x....", "........", "........", "........", "........"}
	if _, err := ParseGrid(rows); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("bad piece err = %v", err)
	}
}
