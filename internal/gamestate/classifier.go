package gamestate

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/go-logr/logr"

	"github.com/hailam/chesseval/internal/board"
)

// ErrInvalidSide is returned when the side to move is neither White nor Black.
var ErrInvalidSide = errors.New("invalid side to move")

// Classifier determines the game state for the side to move.
//
// Classification temporarily plays king moves and blocking moves on the
// board it is given and restores them before returning. A Classifier may
// be shared between goroutines as long as each goroutine classifies its
// own Board.
type Classifier struct {
	log          logr.Logger
	strictKings  bool
	cacheEntries int64
	results      *ristretto.Cache[string, Result]
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger. Per-position traces are emitted at V(1).
func WithLogger(l logr.Logger) Option {
	return func(c *Classifier) {
		c.log = l
	}
}

// WithStrictKings makes Classify return ErrNoKing when the side to move
// has no king, instead of reporting a normal position.
func WithStrictKings() Option {
	return func(c *Classifier) {
		c.strictKings = true
	}
}

// WithResultCache keeps up to maxEntries classifications keyed by piece
// placement and side to move. Zero or negative disables the cache.
func WithResultCache(maxEntries int64) Option {
	return func(c *Classifier) {
		c.cacheEntries = maxEntries
	}
}

// NewClassifier builds a Classifier. It only fails if the result cache
// cannot be created.
func NewClassifier(opts ...Option) (*Classifier, error) {
	c := &Classifier{log: logr.Discard()}
	for _, opt := range opts {
		opt(c)
	}

	if c.cacheEntries > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[string, Result]{
			NumCounters: c.cacheEntries * 10,
			MaxCost:     c.cacheEntries,
			BufferItems: 64,
			Metrics:     true,
			// every entry costs 1, so MaxCost is an entry count
			IgnoreInternalCost: true,
		})
		if err != nil {
			return nil, fmt.Errorf("classifier result cache: %w", err)
		}
		c.results = cache
		c.log.Info("classifier result cache enabled", "entries", c.cacheEntries)
	}
	return c, nil
}

// Classify reports whether side is in check, who gives the check, and
// which of the five game states applies. Checkmate and check take
// precedence over stalemate, which takes precedence over insufficient
// material.
func (c *Classifier) Classify(b *board.Board, side board.Color) (Result, error) {
	if side != board.White && side != board.Black {
		return Result{}, fmt.Errorf("%v: %w", side, ErrInvalidSide)
	}

	var key string
	if c.results != nil {
		key = b.Key() + side.String()
		if res, ok := c.results.Get(key); ok {
			return res.clone(), nil
		}
	}

	res, err := c.classify(b, side)
	if err != nil {
		return Result{}, err
	}

	if c.results != nil {
		c.results.Set(key, res.clone(), 1)
	}

	c.log.V(1).Info("classified position",
		"side", side.String(),
		"state", res.State.String(),
		"attackers", len(res.Attackers))
	return res, nil
}

func (c *Classifier) classify(b *board.Board, side board.Color) (Result, error) {
	ksq := b.KingSquare(side)
	if ksq == board.NoSquare {
		if c.strictKings {
			return Result{}, fmt.Errorf("%s to move: %w", side, ErrNoKing)
		}
		return Result{State: Normal}, nil
	}

	attackers := board.Attackers(b, ksq, side.Other())
	res := Result{
		InCheck:   len(attackers) > 0,
		Attackers: attackers,
	}

	switch {
	case res.InCheck:
		if isCheckmate(b, ksq, side, attackers) {
			res.State = Checkmate
		} else {
			res.State = Check
		}
	case !board.HasLegalMove(b, side):
		res.State = Stalemate
	case insufficientMaterial(b):
		res.State = InsufficientMaterial
	default:
		res.State = Normal
	}
	return res, nil
}

// InCheck is a shortcut that only runs the attacker scan.
func (c *Classifier) InCheck(b *board.Board, side board.Color) bool {
	ksq := b.KingSquare(side)
	if ksq == board.NoSquare {
		return false
	}
	return board.IsAttacked(b, ksq, side.Other())
}

// Wait blocks until buffered cache writes are applied. Useful in tests
// and before reading CacheMetrics.
func (c *Classifier) Wait() {
	if c.results != nil {
		c.results.Wait()
	}
}

// ClearCache drops all cached results, e.g. between games.
func (c *Classifier) ClearCache() {
	if c.results != nil {
		c.results.Clear()
	}
}

// CacheMetrics returns result-cache hits and misses. Both are zero when
// the cache is disabled.
func (c *Classifier) CacheMetrics() (hits, misses uint64) {
	if c.results == nil || c.results.Metrics == nil {
		return 0, 0
	}
	return c.results.Metrics.Hits(), c.results.Metrics.Misses()
}

// Close releases the result cache.
func (c *Classifier) Close() {
	if c.results != nil {
		c.results.Close()
	}
}
