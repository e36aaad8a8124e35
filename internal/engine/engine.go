// Package engine wires the classifier, the evaluator and their caches
// together from a config.Config.
package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"

	"github.com/hailam/chesseval/internal/board"
	"github.com/hailam/chesseval/internal/config"
	"github.com/hailam/chesseval/internal/eval"
	"github.com/hailam/chesseval/internal/gamestate"
)

// Analysis is the combined answer for one position.
type Analysis struct {
	Side   board.Color
	Result gamestate.Result
	Scores eval.Breakdown
}

// Total returns the summed evaluation.
func (a Analysis) Total() int {
	return a.Scores.Total()
}

// Engine owns one classifier, one evaluator and the pawn table they
// share. The pawn table is safe for concurrent use; boards passed to
// Analyze must not be shared between goroutines.
type Engine struct {
	log        logr.Logger
	classifier *gamestate.Classifier
	evaluator  *eval.Evaluator
	pawns      *eval.PawnTable
}

// New builds an Engine from cfg. A nil cfg means config.Default().
func New(cfg *config.Config, log logr.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{log: log}

	var evalOpts []eval.Option
	if cfg.PawnHashMB > 0 {
		e.pawns = eval.NewPawnTable(cfg.PawnHashMB)
		evalOpts = append(evalOpts, eval.WithPawnTable(e.pawns))
		log.Info("pawn hash table initialized",
			"sizeMB", cfg.PawnHashMB,
			"entries", humanize.Comma(int64(e.pawns.Capacity())))
	}
	e.evaluator = eval.NewEvaluator(evalOpts...)

	classOpts := []gamestate.Option{
		gamestate.WithLogger(log.WithName("classifier")),
		gamestate.WithResultCache(cfg.ResultCacheEntries),
	}
	if cfg.StrictKings {
		classOpts = append(classOpts, gamestate.WithStrictKings())
	}
	classifier, err := gamestate.NewClassifier(classOpts...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	e.classifier = classifier

	return e, nil
}

// Analyze classifies the position for side and evaluates it.
func (e *Engine) Analyze(b *board.Board, side board.Color) (Analysis, error) {
	res, err := e.classifier.Classify(b, side)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Side:   side,
		Result: res,
		Scores: e.evaluator.Evaluate(b),
	}, nil
}

// Classify runs only the game-state classification.
func (e *Engine) Classify(b *board.Board, side board.Color) (gamestate.Result, error) {
	return e.classifier.Classify(b, side)
}

// Evaluate runs only the evaluation.
func (e *Engine) Evaluate(b *board.Board) eval.Breakdown {
	return e.evaluator.Evaluate(b)
}

// Track returns an incremental evaluator for b that shares this
// engine's pawn table.
func (e *Engine) Track(b *board.Board) *eval.Incremental {
	return eval.NewIncremental(b, e.evaluator)
}

// NewGame drops cached pawn structures and classifications.
func (e *Engine) NewGame() {
	if e.pawns != nil {
		e.pawns.Clear()
	}
	e.classifier.ClearCache()
	e.log.V(1).Info("caches cleared")
}

// PawnStats reports pawn table usage; ok is false when the table is
// disabled.
func (e *Engine) PawnStats() (stats eval.PawnTableStats, ok bool) {
	if e.pawns == nil {
		return eval.PawnTableStats{}, false
	}
	return e.pawns.Stats(), true
}

// Classifier exposes the underlying classifier.
func (e *Engine) Classifier() *gamestate.Classifier {
	return e.classifier
}

// Close releases background resources held by the caches.
func (e *Engine) Close() {
	e.classifier.Close()
}
