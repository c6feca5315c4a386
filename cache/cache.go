// Package cache stores solved maze outcomes keyed by the exact problem, so a
// repeated request skips the search.
//
// Two stores are provided: MemoryStore for a single process and RedisStore
// for sharing results between server replicas. Both expire entries after a
// configurable TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/solve"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "mazepath:"

// ErrNilStore is returned by Resolve when no store is configured.
var ErrNilStore = errors.New("cache: store is nil")

// Entry is the cached form of a solve.Outcome.
type Entry struct {
	Directions []string `json:"directions"`
	Found      bool     `json:"found"`
	Explored   int      `json:"explored"`
}

// Store is a TTL-bounded key/value store for entries.
type Store interface {
	// Get returns the entry and true on a hit, false on a miss.
	Get(ctx context.Context, key string) (Entry, bool, error)
	// Set stores e under key, replacing any previous value.
	Set(ctx context.Context, key string, e Entry) error
}

// FromOutcome converts a solver outcome into its cached form.
func FromOutcome(o solve.Outcome) Entry {
	e := Entry{Found: o.Found, Explored: o.Explored}
	if o.Found {
		e.Directions = make([]string, len(o.Directions))
		for i, d := range o.Directions {
			e.Directions[i] = d.String()
		}
	}
	return e
}

// Outcome converts e back into a solver outcome.
func (e Entry) Outcome() (solve.Outcome, error) {
	o := solve.Outcome{Found: e.Found, Explored: e.Explored}
	if !e.Found {
		return o, nil
	}
	o.Directions = make([]gridgraph.Direction, len(e.Directions))
	for i, s := range e.Directions {
		d, err := gridgraph.ParseDirection(s)
		if err != nil {
			return solve.Outcome{}, err
		}
		o.Directions[i] = d
	}
	return o, nil
}

// Key hashes the solver name, grid shape, cells and endpoints.
// The solver name is expected in canonical form (see solve.Normalize).
func Key(solver string, g *gridgraph.GridGraph, start, end gridgraph.Point) string {
	h := sha256.New()
	h.Write([]byte(solver))
	h.Write([]byte{0})

	var buf [8]byte
	putInt := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	putInt(g.Rows)
	putInt(g.Cols)
	for _, row := range g.CellValues {
		h.Write(row)
	}
	putInt(start.Row)
	putInt(start.Col)
	putInt(end.Row)
	putInt(end.Col)

	return KeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Resolve returns the cached entry for key, or runs compute and stores its
// result. The boolean reports a cache hit. Store read and write failures are
// passed to onErr (if non-nil) and otherwise ignored, so a broken cache only
// costs a recomputation.
func Resolve(ctx context.Context, s Store, key string, compute func() (solve.Outcome, error), onErr func(error)) (solve.Outcome, bool, error) {
	if s == nil {
		return solve.Outcome{}, false, ErrNilStore
	}
	report := func(err error) {
		if onErr != nil {
			onErr(err)
		}
	}

	if e, ok, err := s.Get(ctx, key); err != nil {
		report(err)
	} else if ok {
		o, err := e.Outcome()
		if err == nil {
			return o, true, nil
		}
		report(err)
	}

	o, err := compute()
	if err != nil {
		return solve.Outcome{}, false, err
	}
	if err = s.Set(ctx, key, FromOutcome(o)); err != nil {
		report(err)
	}

	return o, false, nil
}
