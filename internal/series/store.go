package series

import (
	"math"
	"sync"
	"time"

	"StockForecast/internal/model"
)

// Store is an ordered, append-only sequence of observations.
// Each observation except the last owns one outgoing transition weight.
type Store struct {
	mu          sync.RWMutex
	obs         []model.Observation
	transitions []model.Transition // transitions[i] is owned by obs[i]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// NewStoreFrom builds a Store by appending the given observations in order.
func NewStoreFrom(obs []model.Observation) *Store {
	s := &Store{
		obs:         make([]model.Observation, 0, len(obs)),
		transitions: make([]model.Transition, 0, len(obs)),
	}
	for _, o := range obs {
		s.Append(o.Price, o.Time)
	}
	return s
}

// Append adds an observation at the end of the sequence and records the
// transition weight from the previous last observation to it.
func (s *Store) Append(price float64, ts time.Time) model.Observation {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := model.Observation{Price: price, Time: ts}
	s.obs = append(s.obs, o)

	if n := len(s.obs); n > 1 {
		prev := s.obs[n-2]
		s.transitions = append(s.transitions, model.Transition{
			From:   n - 2,
			To:     n - 1,
			Weight: TransitionWeight(prev.Price, price),
		})
	}
	return o
}

// TransitionWeight is exp(-|curr - prev|).
func TransitionWeight(prev, curr float64) float64 {
	return math.Exp(-math.Abs(curr - prev))
}

// Len returns the number of observations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.obs)
}

// Observations returns a snapshot copy of the sequence.
func (s *Store) Observations() []model.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Observation, len(s.obs))
	copy(out, s.obs)
	return out
}

// Prices returns the prices of the sequence in order.
func (s *Store) Prices() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prices := make([]float64, len(s.obs))
	for i, o := range s.obs {
		prices[i] = o.Price
	}
	return prices
}

// Transition returns the outgoing transition owned by observation i.
// The last observation (and any out-of-range index) has none.
func (s *Store) Transition(i int) (model.Transition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.transitions) {
		return model.Transition{}, false
	}
	return s.transitions[i], true
}

// Transitions returns a copy of the transition side table.
func (s *Store) Transitions() []model.Transition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transition, len(s.transitions))
	copy(out, s.transitions)
	return out
}
