package ports

import "healthquest/internal/domain/game"

type DispatchMetrics interface {
	RecordApplied(kind game.Kind)
	RecordConflict()
	RecordFailure()
}
