package memory

import "context"

// TxManager serializes planner runs against the store lock; there is no
// real transaction to manage in memory mode.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
