package plan

import (
	"context"

	"colonyplan/internal/app/locate"
	"colonyplan/internal/app/ports"
	"colonyplan/internal/app/sequence"
	"colonyplan/internal/app/track"
	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"

	"github.com/rs/zerolog"
)

const (
	OutcomePlaced      = "placed"
	OutcomeNoCandidate = "no_candidate"
	OutcomeTickFault   = "tick_fault"
)

type TickRequest struct {
	Tick  int64                    `json:"tick"`
	Stage catalog.DevelopmentStage `json:"stage"`
}

type PlacementDecision struct {
	BuildingType string           `json:"building_type"`
	Cell         grid.Cell        `json:"cell"`
	Orientation  grid.Orientation `json:"orientation"`
	Material     string           `json:"material,omitempty"`
	Score        int              `json:"score"`
	TopFactors   []string         `json:"top_factors"`
	RoomID       string           `json:"room_id,omitempty"`
}

type TickResponse struct {
	Outcome     string                  `json:"outcome"`
	Placed      *PlacementDecision      `json:"placed,omitempty"`
	Transitions []track.StageTransition `json:"transitions,omitempty"`
}

// UseCase is the per-tick planning pipeline: sequencer, finder, placement
// dispatch, construction tracking. The whole pipeline runs synchronously
// inside one simulation step; it issues at most one placement per tick.
type UseCase struct {
	Sequencer sequence.UseCase
	Finder    *locate.Finder
	Tech      ports.TechGate
	Materials ports.MaterialSelector
	Executor  ports.PlacementExecutor
	Tracker   *track.Manager
	Decisions ports.DecisionLogRepository
	Metrics   ports.PlannerMetrics
	Log       zerolog.Logger
}

// RunTick walks the stage's needs in priority order and places the first
// one that finds a valid location. Internal faults never escape the tick
// boundary: they are logged and downgraded to "no candidate this tick".
func (u *UseCase) RunTick(ctx context.Context, req TickRequest) (resp TickResponse) {
	defer func() {
		if r := recover(); r != nil {
			u.Log.Error().Interface("panic", r).Int64("tick", req.Tick).Msg("planner tick fault")
			if u.Metrics != nil {
				u.Metrics.RecordSearch("", ports.OutcomeTickFault)
			}
			resp = TickResponse{Outcome: OutcomeTickFault}
		}
	}()

	u.Finder.Cache.Prune(req.Tick)
	resp.Transitions = u.Tracker.Update(ctx, req.Tick)

	for _, need := range u.Sequencer.Priorities(req.Stage) {
		if need.Prerequisite != "" && (u.Tech == nil || !u.Tech.IsUnlocked(need.Prerequisite)) {
			continue
		}
		d, ok := catalog.Descriptor(need.BuildingType)
		if !ok || !d.Valid() {
			continue
		}
		if decision, placed := u.tryPlace(ctx, d, req.Tick); placed {
			resp.Placed = &decision
			resp.Outcome = OutcomePlaced
			return resp
		}
	}
	resp.Outcome = OutcomeNoCandidate
	return resp
}

// RequestPlacement runs the pipeline for one explicit building type,
// outside the sequencer loop.
func (u *UseCase) RequestPlacement(ctx context.Context, buildingType string, tick int64) (resp TickResponse) {
	defer func() {
		if r := recover(); r != nil {
			u.Log.Error().Interface("panic", r).Str("building", buildingType).Msg("placement request fault")
			resp = TickResponse{Outcome: OutcomeTickFault}
		}
	}()

	d, ok := catalog.Descriptor(buildingType)
	if !ok || !d.Valid() {
		return TickResponse{Outcome: OutcomeNoCandidate}
	}
	if decision, placed := u.tryPlace(ctx, d, tick); placed {
		return TickResponse{Outcome: OutcomePlaced, Placed: &decision}
	}
	return TickResponse{Outcome: OutcomeNoCandidate}
}

func (u *UseCase) tryPlace(ctx context.Context, d catalog.BuildingDescriptor, tick int64) (PlacementDecision, bool) {
	res := u.Finder.FindBest(d, tick)
	u.recordSearch(ctx, d, res, tick)
	if !res.Found {
		return PlacementDecision{}, false
	}

	material := ""
	if u.Materials != nil {
		m, err := u.Materials.SelectMaterial(d)
		if err != nil {
			u.Log.Warn().Err(err).Str("building", d.Type).Msg("no material for placement")
			return PlacementDecision{}, false
		}
		material = m
	}

	req := ports.PlacementRequest{
		BuildingType: d.Type,
		Cell:         res.Best.Cell,
		Orientation:  res.Best.Orientation,
		Material:     material,
	}
	if err := u.Executor.PlacePlan(ctx, req); err != nil {
		u.Log.Error().Err(err).Str("building", d.Type).Msg("placement dispatch failed")
		u.Finder.Cache.RecordFailure(d.Type, res.Best.Cell, tick, "dispatch: "+err.Error())
		return PlacementDecision{}, false
	}

	decision := PlacementDecision{
		BuildingType: d.Type,
		Cell:         res.Best.Cell,
		Orientation:  res.Best.Orientation,
		Material:     material,
		Score:        res.Best.Score.Total(),
		TopFactors:   res.Best.Score.TopFactors(3),
	}
	if isRoom(d) {
		w, depth := grid.RotatedSize(d.Width, d.Depth, res.Best.Orientation)
		roomPlan := planning.NewRoomPlan(res.Best.Cell, w, depth, d.Role)
		state := u.Tracker.Track(ctx, roomPlan, tick)
		decision.RoomID = state.ID
	}
	u.recordPlacement(ctx, decision, tick)
	if u.Metrics != nil {
		u.Metrics.RecordSearch(d.Type, ports.OutcomePlaced)
	}
	return decision, true
}

// isRoom: rectangular buildings big enough to hold walls and an interior
// get a tracked room plan; 1-2 wide utilities and freestanding pieces
// don't.
func isRoom(d catalog.BuildingDescriptor) bool {
	return d.Category == grid.CategoryBuilding && d.Width >= 3 && d.Depth >= 3 && !d.ImpassableSolid
}

func (u *UseCase) recordSearch(ctx context.Context, d catalog.BuildingDescriptor, res locate.SearchResult, tick int64) {
	outcome := ports.OutcomeNotFound
	if res.Found {
		outcome = ports.OutcomePlaced
	} else if res.Evaluated == 0 && res.CacheSkips > 0 {
		outcome = ports.OutcomeCacheSkip
	}
	if u.Metrics != nil && outcome != ports.OutcomePlaced {
		u.Metrics.RecordSearch(d.Type, outcome)
	}
	if u.Decisions == nil {
		return
	}
	rec := ports.DecisionRecord{
		Tick:         tick,
		Kind:         ports.DecisionKindSearch,
		BuildingType: d.Type,
		Outcome:      string(outcome),
		Candidates:   res.Evaluated,
	}
	if res.Found {
		cell := res.Best.Cell
		rec.Cell = &cell
		rec.Orientation = res.Best.Orientation
		rec.Score = res.Best.Score.Total()
		rec.TopFactors = res.Best.Score.TopFactors(3)
	}
	if err := u.Decisions.Append(ctx, rec); err != nil {
		u.Log.Warn().Err(err).Msg("append search record")
	}
}

func (u *UseCase) recordPlacement(ctx context.Context, decision PlacementDecision, tick int64) {
	u.Log.Info().
		Str("building", decision.BuildingType).
		Int("x", decision.Cell.X).
		Int("z", decision.Cell.Z).
		Str("orientation", string(decision.Orientation)).
		Int("score", decision.Score).
		Strs("top_factors", decision.TopFactors).
		Msg("placement dispatched")
	if u.Decisions == nil {
		return
	}
	cell := decision.Cell
	rec := ports.DecisionRecord{
		Tick:         tick,
		Kind:         ports.DecisionKindPlacement,
		BuildingType: decision.BuildingType,
		Outcome:      string(ports.OutcomePlaced),
		Cell:         &cell,
		Orientation:  decision.Orientation,
		Score:        decision.Score,
		TopFactors:   decision.TopFactors,
	}
	if decision.RoomID != "" {
		rec.Extra = map[string]string{"room_id": decision.RoomID}
	}
	if err := u.Decisions.Append(ctx, rec); err != nil {
		u.Log.Warn().Err(err).Msg("append placement record")
	}
}
