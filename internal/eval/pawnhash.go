package eval

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slices"

	"github.com/hailam/chesseval/internal/board"
)

// PawnEntry stores a cached pawn structure evaluation.
type PawnEntry struct {
	Score         int
	PassedWhite   int
	PassedBlack   int
	ShieldWhite   int // king shield at the time of the store; depends on king placement
	ShieldBlack   int
	IsolatedWhite int
	IsolatedBlack int
}

// pawnSlotSize approximates the memory footprint of one slot and fixes
// how many entries a megabyte buys.
const pawnSlotSize = 72

// EntriesPerMB is the table capacity per requested megabyte.
const EntriesPerMB = (1 << 20) / pawnSlotSize

type pawnSlot struct {
	key   uint64
	used  bool
	entry PawnEntry
}

// PawnTable is a fixed-size hash table for pawn structure evaluations.
//
// Each slot keeps the full key so that two pawn structures landing in
// the same slot are told apart: a probe that finds a different key is a
// miss. Stores overwrite unconditionally. The table is safe for
// concurrent use.
type PawnTable struct {
	mu     sync.Mutex
	slots  []pawnSlot
	hits   uint64
	misses uint64
}

// NewPawnTable creates a table of sizeMB megabytes (at least 1).
func NewPawnTable(sizeMB int) *PawnTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	return NewPawnTableWithCapacity(sizeMB * EntriesPerMB)
}

// NewPawnTableWithCapacity creates a table with exactly n slots (at least 1).
func NewPawnTableWithCapacity(n int) *PawnTable {
	if n < 1 {
		n = 1
	}
	return &PawnTable{slots: make([]pawnSlot, n)}
}

// PawnKey hashes the pawns-only projection of b. Each pawn becomes one
// byte (color in bit 7, square in bits 0-5); the bytes are sorted and
// hashed with xxhash. Boards without pawns all share key 0.
func PawnKey(b *board.Board) uint64 {
	codes := make([]byte, 0, 16)
	for sq := board.A1; sq <= board.H8; sq++ {
		p := b.At(sq)
		if p.Type() != board.Pawn {
			continue
		}
		code := byte(sq)
		if p.Color() == board.White {
			code |= 1 << 7
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return 0
	}
	slices.Sort(codes)
	return xxhash.Sum64(codes)
}

func (pt *PawnTable) index(key uint64) int {
	return int(key % uint64(len(pt.slots)))
}

// Probe looks up the pawn structure of b.
func (pt *PawnTable) Probe(b *board.Board) (PawnEntry, bool) {
	return pt.ProbeKey(PawnKey(b))
}

// ProbeKey looks up an entry by pawn key. The returned entry is a copy.
func (pt *PawnTable) ProbeKey(key uint64) (PawnEntry, bool) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	slot := &pt.slots[pt.index(key)]
	if slot.used && slot.key == key {
		pt.hits++
		return slot.entry, true
	}
	pt.misses++
	return PawnEntry{}, false
}

// Store saves entry for the pawn structure of b.
func (pt *PawnTable) Store(b *board.Board, entry PawnEntry) {
	pt.StoreKey(PawnKey(b), entry)
}

// StoreKey saves entry under key, replacing whatever occupied the slot.
func (pt *PawnTable) StoreKey(key uint64, entry PawnEntry) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	pt.slots[pt.index(key)] = pawnSlot{key: key, used: true, entry: entry}
}

// Clear empties every slot and resets the counters.
func (pt *PawnTable) Clear() {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	clear(pt.slots)
	pt.hits = 0
	pt.misses = 0
}

// Capacity returns the number of slots.
func (pt *PawnTable) Capacity() int {
	return len(pt.slots)
}

// PawnTableStats is a snapshot of table usage. Rates are percentages.
type PawnTableStats struct {
	SizeMB        int
	Bytes         uint64
	Entries       int
	Occupancy     int
	OccupancyRate float64
	Hits          uint64
	Misses        uint64
	Probes        uint64
	HitRate       float64
}

// Stats walks the table and reports occupancy and hit counters.
func (pt *PawnTable) Stats() PawnTableStats {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	occupied := 0
	for i := range pt.slots {
		if pt.slots[i].used {
			occupied++
		}
	}

	s := PawnTableStats{
		Bytes:     uint64(len(pt.slots)) * pawnSlotSize,
		Entries:   len(pt.slots),
		Occupancy: occupied,
		Hits:      pt.hits,
		Misses:    pt.misses,
		Probes:    pt.hits + pt.misses,
	}
	s.SizeMB = int(s.Bytes >> 20)
	s.OccupancyRate = float64(occupied) / float64(len(pt.slots)) * 100
	if s.Probes > 0 {
		s.HitRate = float64(s.Hits) / float64(s.Probes) * 100
	}
	return s
}

func (s PawnTableStats) String() string {
	return fmt.Sprintf("pawn hash %s, %s entries, %s used (%.1f%%), %s probes, hit rate %.1f%%",
		humanize.IBytes(s.Bytes),
		humanize.Comma(int64(s.Entries)),
		humanize.Comma(int64(s.Occupancy)),
		s.OccupancyRate,
		humanize.Comma(int64(s.Probes)),
		s.HitRate)
}
