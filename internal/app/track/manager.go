package track

import (
	"context"
	"fmt"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"

	"github.com/rs/zerolog"
)

// WallCounter classifies a cell set against one structure category; the
// concrete implementation is statecheck.Checker.
type WallCounter interface {
	CountStates(cells []grid.Cell, category grid.StructureCategory) planning.WallStateCount
}

type StageTransition struct {
	RoomID     string         `json:"room_id"`
	From       planning.Stage `json:"from"`
	To         planning.Stage `json:"to"`
	Completion float64        `json:"completion"`
}

// Manager owns the per-room construction state machines. Stages advance
// strictly forward, at most one step per evaluation, so observers always
// see the full Planned → ... → Complete sequence.
type Manager struct {
	Counter   WallCounter
	States    ports.ConstructionStateRepository
	Decisions ports.DecisionLogRepository
	Log       zerolog.Logger

	tracked     map[string]*planning.ConstructionState
	lastRunTick int64
	ran         bool
	nextID      int
}

func NewManager(counter WallCounter) *Manager {
	return &Manager{
		Counter: counter,
		tracked: map[string]*planning.ConstructionState{},
	}
}

// Track starts following a freshly planned room.
func (m *Manager) Track(ctx context.Context, plan planning.ConstructionPlan, nowTick int64) planning.ConstructionState {
	m.nextID++
	id := fmt.Sprintf("room-%d", m.nextID)
	state := planning.NewConstructionState(id, plan, nowTick)
	m.tracked[id] = &state
	m.persist(ctx, state)
	return state
}

// Update advances every tracked room. Runs are throttled against the
// simulation tick, not wall time.
func (m *Manager) Update(ctx context.Context, nowTick int64) []StageTransition {
	if m.ran && nowTick-m.lastRunTick < planning.MonitorIntervalTicks {
		return nil
	}
	m.lastRunTick = nowTick
	m.ran = true

	var transitions []StageTransition
	for id, state := range m.tracked {
		if state.Stage == planning.StageComplete {
			if state.CompletedAtTick > 0 && nowTick-state.CompletedAtTick >= planning.CompletedGraceTicks {
				delete(m.tracked, id)
				if m.States != nil {
					_ = m.States.Delete(ctx, id)
				}
			}
			continue
		}
		if tr, ok := m.advance(state, nowTick); ok {
			transitions = append(transitions, tr)
			m.persist(ctx, *state)
			m.record(ctx, *state, tr, nowTick)
		}
	}
	return transitions
}

func (m *Manager) advance(state *planning.ConstructionState, nowTick int64) (StageTransition, bool) {
	walls := m.Counter.CountStates(state.Plan.WallCells, grid.CategoryWall)
	state.WallsBuilt = walls.Built
	state.UpdatedAtTick = nowTick

	from := state.Stage
	switch state.Stage {
	case planning.StagePlanned:
		if !walls.AnyActivity() {
			return StageTransition{}, false
		}
	case planning.StageWallsBuilding:
		if walls.CompletionPercent() < planning.WallsCompleteThreshold {
			return StageTransition{}, false
		}
	case planning.StageWallsComplete:
		// unconditional: furnishing opens as soon as walls are done
	case planning.StageFurnishing:
		if !state.SecondaryFurniturePlaced {
			return StageTransition{}, false
		}
	default:
		return StageTransition{}, false
	}

	state.Stage = from.Next()
	if state.Stage == planning.StageComplete {
		state.CompletedAtTick = nowTick
	}
	return StageTransition{
		RoomID:     state.ID,
		From:       from,
		To:         state.Stage,
		Completion: walls.CompletionPercent(),
	}, true
}

func (m *Manager) MarkCriticalFurniture(id string) error {
	state, ok := m.tracked[id]
	if !ok {
		return ports.ErrNotFound
	}
	state.CriticalFurniturePlaced = true
	return nil
}

func (m *Manager) MarkSecondaryFurniture(id string) error {
	state, ok := m.tracked[id]
	if !ok {
		return ports.ErrNotFound
	}
	state.SecondaryFurniturePlaced = true
	return nil
}

// Active returns every tracked room, completed rooms included until their
// grace period elapses.
func (m *Manager) Active() []planning.ConstructionState {
	out := make([]planning.ConstructionState, 0, len(m.tracked))
	for _, s := range m.tracked {
		out = append(out, *s)
	}
	return out
}

func (m *Manager) Get(id string) (planning.ConstructionState, bool) {
	s, ok := m.tracked[id]
	if !ok {
		return planning.ConstructionState{}, false
	}
	return *s, true
}

// Restore reloads previously persisted rooms, e.g. on process restart.
func (m *Manager) Restore(ctx context.Context) error {
	if m.States == nil {
		return nil
	}
	states, err := m.States.ListActive(ctx)
	if err != nil {
		return err
	}
	for i := range states {
		s := states[i]
		m.tracked[s.ID] = &s
		if n := roomNumber(s.ID); n > m.nextID {
			m.nextID = n
		}
	}
	return nil
}

func (m *Manager) persist(ctx context.Context, state planning.ConstructionState) {
	if m.States == nil {
		return
	}
	if err := m.States.Save(ctx, state); err != nil {
		m.Log.Warn().Err(err).Str("room", state.ID).Msg("persist construction state")
	}
}

func (m *Manager) record(ctx context.Context, state planning.ConstructionState, tr StageTransition, nowTick int64) {
	m.Log.Info().
		Str("room", state.ID).
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Float64("completion", tr.Completion).
		Msg("construction stage transition")
	if m.Decisions == nil {
		return
	}
	_ = m.Decisions.Append(ctx, ports.DecisionRecord{
		Tick:    nowTick,
		Kind:    ports.DecisionKindTransition,
		Outcome: string(tr.To),
		Reason:  string(tr.From),
		Extra:   map[string]string{"room_id": state.ID, "completion": fmt.Sprintf("%.2f", tr.Completion)},
	})
}

func roomNumber(id string) int {
	var n int
	_, err := fmt.Sscanf(id, "room-%d", &n)
	if err != nil {
		return 0
	}
	return n
}
