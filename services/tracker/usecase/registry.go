package usecase

import (
	"context"
	"sync"
	"time"
)

// EngineFactory builds the engine of a user on first use
type EngineFactory func(userID string) *TripEngine

// TripRegistry owns one engine per traveler
type TripRegistry struct {
	// evictMu is held shared while an engine is in use and exclusively while evicting
	evictMu sync.RWMutex
	mu      sync.Mutex
	engines map[string]*TripEngine
	factory EngineFactory
}

// NewTripRegistry creates an empty registry
func NewTripRegistry(factory EngineFactory) *TripRegistry {
	return &TripRegistry{
		engines: make(map[string]*TripEngine),
		factory: factory,
	}
}

// Get returns the engine of userID if one exists
func (r *TripRegistry) Get(userID string) (*TripEngine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.engines[userID]
	return e, ok
}

// GetOrCreate returns the engine of userID, creating it when absent
func (r *TripRegistry) GetOrCreate(userID string) *TripEngine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.engines[userID]; ok {
		return e
	}
	e := r.factory(userID)
	r.engines[userID] = e
	return e
}

// Do runs fn on the engine of userID, creating it when absent. The engine
// cannot be evicted while fn runs.
func (r *TripRegistry) Do(userID string, fn func(*TripEngine)) {
	r.evictMu.RLock()
	defer r.evictMu.RUnlock()
	fn(r.GetOrCreate(userID))
}

// EvictIdle drops engines that have been idle without subscribers for ttl
// and returns how many were dropped
func (r *TripRegistry) EvictIdle(now time.Time, ttl time.Duration) int {
	r.evictMu.Lock()
	defer r.evictMu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for userID, e := range r.engines {
		if e.Evictable(now, ttl) {
			delete(r.engines, userID)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of tracked travelers
func (r *TripRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}

// ResetAll returns every engine to idle
func (r *TripRegistry) ResetAll(ctx context.Context) {
	r.mu.Lock()
	engines := make([]*TripEngine, 0, len(r.engines))
	for _, e := range r.engines {
		engines = append(engines, e)
	}
	r.mu.Unlock()

	for _, e := range engines {
		e.Reset(ctx)
	}
}
