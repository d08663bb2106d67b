package ports

import (
	"context"

	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
)

// WorldProvider is the read-only view of the simulation's world grid.
type WorldProvider interface {
	Bounds() grid.Bounds
	TileAt(c grid.Cell) (grid.TileInfo, bool)
	InHomeZone(c grid.Cell) bool
	Hazards() []grid.Cell
}

type Structure struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Category grid.StructureCategory `json:"category"`
	Role     catalog.BuildingRole   `json:"role"`
	Origin   grid.Cell              `json:"origin"`
	Width    int                    `json:"width"`
	Depth    int                    `json:"depth"`
	Owned    bool                   `json:"owned"`
}

func (s Structure) Center() grid.Cell {
	return s.Origin.Add(s.Width/2, s.Depth/2)
}

// StructureRegistry enumerates built structures and pending build markers.
// The construction state checker folds these into CellOccupancy; other
// components should consume the checker, not the raw markers.
type StructureRegistry interface {
	Structures() []Structure
	BuiltAt(c grid.Cell) (Structure, bool)
	PlannedAt(c grid.Cell) (grid.StructureCategory, bool)
	InProgressAt(c grid.Cell) (grid.StructureCategory, bool)
}

type Agent struct {
	ID      string    `json:"id"`
	Pos     grid.Cell `json:"pos"`
	Hostile bool      `json:"hostile"`
}

type AgentRoster interface {
	Agents() []Agent
	FriendlyCount() int
}

// ReachabilityOracle answers "can something walk from a to b" without
// exposing the simulation's pathfinding.
type ReachabilityOracle interface {
	CanReach(from, to grid.Cell) bool
}

type PlacementRequest struct {
	BuildingType string           `json:"building_type"`
	Cell         grid.Cell        `json:"cell"`
	Orientation  grid.Orientation `json:"orientation"`
	Material     string           `json:"material,omitempty"`
}

// PlacementExecutor creates the planned-structure marker in the simulation.
// This is the engine's only external mutation.
type PlacementExecutor interface {
	PlacePlan(ctx context.Context, req PlacementRequest) error
}

// MaterialSelector is the external stuff-selection policy: abundant,
// non-precious materials preferred.
type MaterialSelector interface {
	SelectMaterial(d catalog.BuildingDescriptor) (string, error)
}

type ResourceCounter interface {
	CountOf(material string) int
}

// TechGate answers whether a prerequisite technology is unlocked.
type TechGate interface {
	IsUnlocked(tech string) bool
}
