package eval

import (
	"fmt"

	"github.com/hailam/chesseval/internal/board"
)

// Breakdown is the per-component evaluation in centipawns.
type Breakdown struct {
	Material      int
	Positional    int
	Mobility      int
	PawnStructure int
	KingSafety    int
}

// Total sums the five components.
func (bd Breakdown) Total() int {
	return bd.Material + bd.Positional + bd.Mobility + bd.PawnStructure + bd.KingSafety
}

func (bd Breakdown) String() string {
	return fmt.Sprintf("Material score:      %6d\n"+
		"Positional score:    %6d\n"+
		"Mobility score:      %6d\n"+
		"Pawn structure:      %6d\n"+
		"King safety:         %6d\n"+
		"Total evaluation:    %6d\n",
		bd.Material, bd.Positional, bd.Mobility, bd.PawnStructure, bd.KingSafety, bd.Total())
}

// Assess turns a total into a short verdict for display.
func Assess(total int) string {
	switch {
	case total > 100:
		return "White has significant advantage"
	case total > 50:
		return "White has moderate advantage"
	case total > 10:
		return "White has slight advantage"
	case total < -100:
		return "Black has significant advantage"
	case total < -50:
		return "Black has moderate advantage"
	case total < -10:
		return "Black has slight advantage"
	default:
		return "Position is roughly equal"
	}
}

// Evaluator runs the five scorers, optionally serving pawn structure
// from a PawnTable. The zero value and a nil *Evaluator evaluate without
// a cache.
type Evaluator struct {
	pawns *PawnTable
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithPawnTable caches pawn structure scores in pt.
func WithPawnTable(pt *PawnTable) Option {
	return func(e *Evaluator) {
		e.pawns = pt
	}
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PawnTable returns the attached table, or nil.
func (e *Evaluator) PawnTable() *PawnTable {
	if e == nil {
		return nil
	}
	return e.pawns
}

// Evaluate computes every component from scratch.
func (e *Evaluator) Evaluate(b *board.Board) Breakdown {
	return Breakdown{
		Material:      Material(b),
		Positional:    Positional(b),
		Mobility:      Mobility(b),
		PawnStructure: e.PawnStructure(b),
		KingSafety:    KingSafety(b),
	}
}

// PawnStructure returns the pawn structure score, probing the pawn table
// first when one is attached and storing the result on a miss.
func (e *Evaluator) PawnStructure(b *board.Board) int {
	pt := e.PawnTable()
	if pt == nil {
		return PawnStructure(b)
	}

	key := PawnKey(b)
	if entry, ok := pt.ProbeKey(key); ok {
		return entry.Score
	}

	report := AnalyzePawns(b)
	pt.StoreKey(key, report.Entry())
	return report.Score()
}
