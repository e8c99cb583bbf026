// Package persist mirrors the whitelisted state slices (auth, sessions,
// moods, settings) to the durable key-value collaborator and rehydrates
// them at startup. The UI slice is deliberately never persisted.
package persist

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bmichals25/MindSync/internal/kv"
	"github.com/bmichals25/MindSync/internal/model"
	"github.com/bmichals25/MindSync/internal/store"
)

// RootKey is the single fixed key the whole persisted document lives under.
const RootKey = "mindsync:state"

const writeTimeout = 5 * time.Second

type Gateway struct {
	kv kv.Store
}

func New(store kv.Store) *Gateway {
	return &Gateway{kv: store}
}

// Rehydrate reads the persisted document and returns the initial snapshot
// for the stores. An absent key yields defaults. A read or decode failure
// is reported and also yields defaults: the app starts memory-only rather
// than crashing.
func (g *Gateway) Rehydrate(ctx context.Context) store.Snapshot {
	defaults := store.Snapshot{Settings: model.DefaultSettings()}

	raw, err := g.kv.Get(ctx, RootKey)
	if err != nil {
		log.Error().Err(err).Msg("state rehydration read failed; starting with defaults")
		return defaults
	}
	if raw == nil {
		return defaults
	}

	var snap store.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Error().Err(err).Msg("state rehydration decode failed; starting with defaults")
		return defaults
	}
	return snap
}

// Watch mirrors every whitelisted transition to durable storage. Failures
// are logged and swallowed; the stores keep operating in memory for that
// cycle. Mirroring pauses while the privacy storage flag is off.
func (g *Gateway) Watch(s *store.Store) {
	s.OnChange(func() {
		g.flush(s)
	})
}

func (g *Gateway) flush(s *store.Store) {
	snap := s.Snapshot()
	if !snap.Settings.Privacy.StorageEnabled {
		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Msg("state serialization failed; skipping persist cycle")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := g.kv.Set(ctx, RootKey, raw); err != nil {
		log.Error().Err(err).Msg("state persist failed; continuing in memory")
	}
}

// Flush writes the current whitelisted snapshot immediately, useful on
// shutdown.
func (g *Gateway) Flush(s *store.Store) {
	g.flush(s)
}
