package memory

import (
	"sync"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/planning"
)

// Store backs the memory repositories used in tests and demo mode, where
// no database is configured.
type Store struct {
	mu        sync.RWMutex
	states    map[string]planning.ConstructionState
	decisions []ports.DecisionRecord
}

func NewStore() *Store {
	return &Store{
		states: make(map[string]planning.ConstructionState),
	}
}
