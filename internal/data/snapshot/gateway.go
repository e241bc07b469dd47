package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cine-reserve/internal/data/entity"

	"go.uber.org/zap"
)

// Fixed keys under which the three collections live in the key-value surface.
const (
	KeyMovies    = "movies"
	KeyShowtimes = "showtimes"
	KeyBookings  = "bookings"
)

// ErrKeyNotFound is returned by a KV backend when a key has never been written.
var ErrKeyNotFound = errors.New("snapshot key not found")

// KV is the raw key-value surface a snapshot backend provides. Values are
// plain JSON documents; no binary framing.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// BatchWriter is implemented by backends that can commit several puts as one
// atomic write. Save prefers it when available.
type BatchWriter interface {
	PutAll(ctx context.Context, entries map[string][]byte) error
}

// Snapshot is the full persisted state: the three collections in insertion
// order.
type Snapshot struct {
	Movies    []*entity.Movie
	Showtimes []*entity.Showtime
	Bookings  []*entity.Booking
}

// Gateway loads state at startup and records every committed mutation.
type Gateway struct {
	kv  KV
	log *zap.Logger
}

func NewGateway(kv KV, log *zap.Logger) *Gateway {
	return &Gateway{
		kv:  kv,
		log: log.With(zap.String("component", "snapshot")),
	}
}

// Load returns the prior snapshot if one exists and parses. A missing or
// unparseable collection falls back to that collection's seed default without
// blocking the other two; the fallback is a non-fatal warning.
func (g *Gateway) Load(ctx context.Context) *Snapshot {
	return &Snapshot{
		Movies:    loadCollection(ctx, g, KeyMovies, SeedMovies),
		Showtimes: loadCollection(ctx, g, KeyShowtimes, SeedShowtimes),
		Bookings:  loadCollection(ctx, g, KeyBookings, SeedBookings),
	}
}

func loadCollection[T any](ctx context.Context, g *Gateway, key string, seed func() []T) []T {
	raw, err := g.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		g.log.Info("No prior snapshot, using seed data", zap.String("key", key))
		return seed()
	}
	if err != nil {
		g.log.Warn("Failed to read snapshot, using seed data",
			zap.String("key", key),
			zap.Error(err),
		)
		return seed()
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		g.log.Warn("Snapshot did not parse, using seed data",
			zap.String("key", key),
			zap.Error(err),
		)
		return seed()
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Save writes the full snapshot of all three collections synchronously. The
// caller's mutation is not committed until Save returns nil.
func (g *Gateway) Save(ctx context.Context, snap *Snapshot) error {
	entries := make(map[string][]byte, 3)
	for key, records := range map[string]any{
		KeyMovies:    snap.Movies,
		KeyShowtimes: snap.Showtimes,
		KeyBookings:  snap.Bookings,
	} {
		raw, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		entries[key] = raw
	}

	if batch, ok := g.kv.(BatchWriter); ok {
		if err := batch.PutAll(ctx, entries); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		return nil
	}

	for _, key := range []string{KeyMovies, KeyShowtimes, KeyBookings} {
		if err := g.kv.Put(ctx, key, entries[key]); err != nil {
			return fmt.Errorf("save snapshot %s: %w", key, err)
		}
	}
	return nil
}
