package world

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/terrain-gen/internal/terrain/gen"
)

// Manager is the sole owner of the current World. Regeneration builds a
// fresh World off to the side and swaps the published snapshot under the
// lock, so a reader never observes a partially rebuilt map.
type Manager struct {
	mu      sync.RWMutex
	current *World

	src     gen.Source
	workers int
	log     *slog.Logger
}

// NewManager generates the initial world and becomes its owner.
func NewManager(seed uint64, params Parameters, src gen.Source, workers int, log *slog.Logger) (*Manager, error) {
	m := &Manager{src: src, workers: workers, log: log}
	if err := m.publish(seed, params); err != nil {
		return nil, err
	}
	return m, nil
}

// Current returns the latest published snapshot. Callers must treat the
// returned World as read-only; it is shared with every other reader.
func (m *Manager) Current() *World {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Regenerate builds and publishes a fresh World for the given seed, keeping
// the current parameter set.
func (m *Manager) Regenerate(seed uint64) error {
	return m.publish(seed, m.Current().Params)
}

// SetParameters validates and applies a new parameter set, regenerating the
// world under the current seed. On error the published snapshot is left
// untouched.
func (m *Manager) SetParameters(params Parameters) error {
	return m.publish(m.Current().Seed, params)
}

func (m *Manager) publish(seed uint64, params Parameters) error {
	run := uuid.NewString()
	start := time.Now()

	w, err := New(seed, params, m.src, m.workers)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = w
	m.mu.Unlock()

	m.log.Info("world generated",
		"run", run,
		"seed", seed,
		"width", params.Width,
		"height", params.Height,
		"octaves", params.Elevation.Octaves,
		"min", w.Elevation.Min,
		"max", w.Elevation.Max,
		"duration", time.Since(start),
	)
	return nil
}
