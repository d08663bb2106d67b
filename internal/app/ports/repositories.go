package ports

import (
	"context"

	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"
)

type ConstructionStateRepository interface {
	Save(ctx context.Context, state planning.ConstructionState) error
	ListActive(ctx context.Context) ([]planning.ConstructionState, error)
	Delete(ctx context.Context, id string) error
}

// DecisionRecord is one structured diagnostic record: a finder outcome or a
// construction-stage transition, for the external analytics collaborator.
type DecisionRecord struct {
	Tick         int64             `json:"tick"`
	Kind         string            `json:"kind"`
	BuildingType string            `json:"building_type,omitempty"`
	Outcome      string            `json:"outcome"`
	Cell         *grid.Cell        `json:"cell,omitempty"`
	Orientation  grid.Orientation  `json:"orientation,omitempty"`
	Score        int               `json:"score,omitempty"`
	TopFactors   []string          `json:"top_factors,omitempty"`
	Reason       string            `json:"reason,omitempty"`
	Candidates   int               `json:"candidates,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

const (
	DecisionKindSearch     = "search"
	DecisionKindPlacement  = "placement"
	DecisionKindTransition = "stage_transition"
)

type DecisionLogRepository interface {
	Append(ctx context.Context, rec DecisionRecord) error
	ListRecent(ctx context.Context, limit int) ([]DecisionRecord, error)
}
