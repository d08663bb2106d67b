package inmemory

import (
	"sync"

	"colonyplan/internal/app/ports"
)

type Snapshot struct {
	SearchTotal     uint64            `json:"search_total"`
	SearchPlaced    uint64            `json:"search_placed"`
	SearchNotFound  uint64            `json:"search_not_found"`
	SearchCacheSkip uint64            `json:"search_cache_skip"`
	TickFaults      uint64            `json:"tick_faults"`
	ByBuildingType  map[string]uint64 `json:"by_building_type"`
}

// Recorder counts finder outcomes per building type. It satisfies
// ports.PlannerMetrics and exposes a snapshot for the KPI endpoint.
type Recorder struct {
	mu        sync.Mutex
	placed    uint64
	notFound  uint64
	cacheSkip uint64
	faults    uint64
	byType    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byType: map[string]uint64{},
	}
}

func (r *Recorder) RecordSearch(buildingType string, outcome ports.SearchOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch outcome {
	case ports.OutcomePlaced:
		r.placed++
	case ports.OutcomeCacheSkip:
		r.cacheSkip++
	case ports.OutcomeTickFault:
		r.faults++
	default:
		r.notFound++
	}
	if buildingType != "" {
		r.byType[buildingType]++
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SearchPlaced:    r.placed,
		SearchNotFound:  r.notFound,
		SearchCacheSkip: r.cacheSkip,
		TickFaults:      r.faults,
		SearchTotal:     r.placed + r.notFound + r.cacheSkip,
		ByBuildingType:  make(map[string]uint64, len(r.byType)),
	}
	for k, v := range r.byType {
		out.ByBuildingType[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
