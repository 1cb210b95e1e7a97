package inmemory

import (
	"sync"

	"healthquest/internal/domain/game"
)

type Snapshot struct {
	DispatchTotal    uint64            `json:"dispatch_total"`
	DispatchApplied  uint64            `json:"dispatch_applied"`
	DispatchConflict uint64            `json:"dispatch_conflict"`
	DispatchFailure  uint64            `json:"dispatch_failure"`
	ByActionKind     map[string]uint64 `json:"by_action_kind"`
}

type Recorder struct {
	mu       sync.Mutex
	applied  uint64
	conflict uint64
	failure  uint64
	byKind   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordApplied(kind game.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied++
	r.byKind[string(kind)]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		DispatchApplied:  r.applied,
		DispatchConflict: r.conflict,
		DispatchFailure:  r.failure,
		DispatchTotal:    r.applied + r.conflict + r.failure,
		ByActionKind:     make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byKind {
		out.ByActionKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
