package memory

import (
	"context"

	"colonyplan/internal/app/ports"
)

// maxDecisionRecords bounds the in-memory log; old records roll off.
const maxDecisionRecords = 4096

type DecisionLogRepo struct {
	store *Store
}

func NewDecisionLogRepo(store *Store) DecisionLogRepo {
	return DecisionLogRepo{store: store}
}

func (r DecisionLogRepo) Append(_ context.Context, rec ports.DecisionRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.decisions = append(r.store.decisions, rec)
	if len(r.store.decisions) > maxDecisionRecords {
		r.store.decisions = r.store.decisions[len(r.store.decisions)-maxDecisionRecords:]
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r DecisionLogRepo) ListRecent(_ context.Context, limit int) ([]ports.DecisionRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if limit <= 0 || limit > len(r.store.decisions) {
		limit = len(r.store.decisions)
	}
	out := make([]ports.DecisionRecord, 0, limit)
	for i := len(r.store.decisions) - 1; i >= len(r.store.decisions)-limit; i-- {
		out = append(out, r.store.decisions[i])
	}
	return out, nil
}
