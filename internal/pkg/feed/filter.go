package feed

import (
	"sync"
	"time"

	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/utils"
)

const (
	// DefaultMinDisplacementMeters is the movement that always yields a sample
	DefaultMinDisplacementMeters = 30.0
	// DefaultMaxInterval is the longest gap between two accepted samples
	DefaultMaxInterval = 60 * time.Second
)

// Filter applies the feed sampling policy: a fix is accepted when it moved at
// least MinDisplacement from the last accepted one or MaxInterval has elapsed
type Filter struct {
	MinDisplacement float64
	MaxInterval     time.Duration

	mu   sync.Mutex
	last *models.PositionSample
}

// NewFilter returns a filter with the default sampling policy
func NewFilter() *Filter {
	return &Filter{
		MinDisplacement: DefaultMinDisplacementMeters,
		MaxInterval:     DefaultMaxInterval,
	}
}

// Accept reports whether sample should be forwarded and records it if so
func (f *Filter) Accept(sample models.PositionSample) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.last == nil || f.last.UserID != sample.UserID {
		f.remember(sample)
		return true
	}

	moved := utils.DistanceMeters(f.last.Coordinate, sample.Coordinate) >= f.MinDisplacement
	stale := sample.Timestamp.Sub(f.last.Timestamp) >= f.MaxInterval
	if !moved && !stale {
		return false
	}
	f.remember(sample)
	return true
}

// Reset forgets the last accepted sample
func (f *Filter) Reset() {
	f.mu.Lock()
	f.last = nil
	f.mu.Unlock()
}

func (f *Filter) remember(sample models.PositionSample) {
	s := sample
	f.last = &s
}
