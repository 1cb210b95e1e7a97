package redisrepo

import (
	"context"
	"sync"
)

// TxManager serializes dispatches in-process. Redis itself carries no
// transaction here; single-instance deployment is assumed.
type TxManager struct {
	mu *sync.Mutex
}

func NewTxManager() TxManager {
	return TxManager{mu: &sync.Mutex{}}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
