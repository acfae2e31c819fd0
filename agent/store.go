package agent

import (
	"sync"

	"github.com/kantobot/strategy-core/archetype"
	"github.com/kantobot/strategy-core/model"
	"github.com/kantobot/strategy-core/plan"
	"github.com/kantobot/strategy-core/rules"
)

// battleEntry is everything cached for one battle: the verdict, the plan,
// the compiled filter engine, and the original team sheet. Written once on
// first access, read-only until removal.
type battleEntry struct {
	Archetype archetype.TeamArchetype
	Plan      *plan.Gameplan
	Team      []model.TeamMember
	engine    *rules.Engine
}

// Store owns the per-battle cache. It is the only mutable shared state in
// the core; a single mutex around the map operations is all the
// concurrency discipline required — entries themselves are immutable.
type Store struct {
	mu      sync.Mutex
	battles map[string]*battleEntry
}

func NewStore() *Store {
	return &Store{battles: make(map[string]*battleEntry)}
}

// ensure returns the existing entry for the battle or installs the one
// produced by build. Insert-if-absent: concurrent callers for the same id
// observe a single winner.
func (s *Store) ensure(battleID string, build func() *battleEntry) *battleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.battles[battleID]; ok {
		return e
	}
	e := build()
	s.battles[battleID] = e
	return e
}

func (s *Store) get(battleID string) (*battleEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.battles[battleID]
	return e, ok
}

// remove drops a finished battle. Forgetting to call it leaks a small,
// bounded amount of memory per battle, nothing more.
func (s *Store) remove(battleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.battles, battleID)
}

// Len reports how many battles are currently cached.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.battles)
}
