package memory

import (
	"context"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/planning"
)

type ConstructionStateRepo struct {
	store *Store
}

func NewConstructionStateRepo(store *Store) ConstructionStateRepo {
	return ConstructionStateRepo{store: store}
}

func (r ConstructionStateRepo) Save(_ context.Context, state planning.ConstructionState) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.states[state.ID] = state
	return nil
}

func (r ConstructionStateRepo) ListActive(_ context.Context) ([]planning.ConstructionState, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]planning.ConstructionState, 0, len(r.store.states))
	for _, s := range r.store.states {
		out = append(out, s)
	}
	return out, nil
}

func (r ConstructionStateRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.states[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.store.states, id)
	return nil
}
