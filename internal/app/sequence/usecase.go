package sequence

import (
	"sort"

	"colonyplan/internal/domain/catalog"
)

// Need is one prioritized building request. Prerequisite is a tech tag the
// caller evaluates lazily; the sequencer itself never checks it.
type Need struct {
	BuildingType string `json:"building_type"`
	Priority     int    `json:"priority"`
	Reason       string `json:"reason"`
	Prerequisite string `json:"prerequisite,omitempty"`
}

// Stage-dependent static priority tables. Survival-critical shelter,
// cooking, and storage dominate the early game; medical, defense, and
// research infrastructure rise mid-game; recreation and advanced
// production dominate late.
var stageTables = map[catalog.DevelopmentStage][]Need{
	catalog.StageEarly: {
		{BuildingType: "shelter", Priority: 95, Reason: "colonists need a roof"},
		{BuildingType: "kitchen", Priority: 85, Reason: "raw food spoils"},
		{BuildingType: "storehouse", Priority: 80, Reason: "supplies rot outside"},
		{BuildingType: "farm_plot", Priority: 70, Reason: "food security"},
		{BuildingType: "bedroom", Priority: 60, Reason: "private rooms improve rest"},
	},
	catalog.StageMid: {
		{BuildingType: "infirmary", Priority: 85, Reason: "treat the wounded", Prerequisite: "medicine"},
		{BuildingType: "turret", Priority: 80, Reason: "perimeter defense", Prerequisite: "gun_turrets"},
		{BuildingType: "workshop", Priority: 75, Reason: "production chain", Prerequisite: "smithing"},
		{BuildingType: "generator", Priority: 70, Reason: "power grid", Prerequisite: "electricity"},
		{BuildingType: "research_bench", Priority: 65, Reason: "unlock technology"},
		{BuildingType: "bedroom", Priority: 55, Reason: "growing population"},
		{BuildingType: "storehouse", Priority: 45, Reason: "stockpile overflow"},
	},
	catalog.StageLate: {
		{BuildingType: "rec_room", Priority: 80, Reason: "morale upkeep"},
		{BuildingType: "research_bench", Priority: 75, Reason: "endgame research"},
		{BuildingType: "workshop", Priority: 70, Reason: "advanced production", Prerequisite: "smithing"},
		{BuildingType: "turret", Priority: 65, Reason: "raid escalation", Prerequisite: "gun_turrets"},
		{BuildingType: "bedroom", Priority: 50, Reason: "housing expansion"},
	},
}

type UseCase struct{}

// Priorities returns the stage's building needs, highest priority first.
func (UseCase) Priorities(stage catalog.DevelopmentStage) []Need {
	table, ok := stageTables[stage]
	if !ok {
		table = stageTables[catalog.StageEarly]
	}
	out := make([]Need, len(table))
	copy(out, table)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}
