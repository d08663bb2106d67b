package catalog

import "colonyplan/internal/domain/grid"

type BuildingRole string

const (
	RoleBedroom    BuildingRole = "bedroom"
	RoleKitchen    BuildingRole = "kitchen"
	RoleStorage    BuildingRole = "storage"
	RoleWorkshop   BuildingRole = "workshop"
	RolePower      BuildingRole = "power"
	RoleFarm       BuildingRole = "farm"
	RoleDefense    BuildingRole = "defense"
	RoleRecreation BuildingRole = "recreation"
	RoleResearch   BuildingRole = "research"
	RoleMedical    BuildingRole = "medical"
	RoleGeneral    BuildingRole = "general"
)

type DevelopmentStage string

const (
	StageEarly DevelopmentStage = "early"
	StageMid   DevelopmentStage = "mid"
	StageLate  DevelopmentStage = "late"
)

// BuildingDescriptor is the immutable catalog entry for one building type.
type BuildingDescriptor struct {
	Type     string                 `json:"type"`
	Width    int                    `json:"width"`
	Depth    int                    `json:"depth"`
	Role     BuildingRole           `json:"role"`
	Category grid.StructureCategory `json:"category"`

	// NeedsMaterial marks buildings that take a chosen construction
	// material (wood, stone, ...) selected by the external policy.
	NeedsMaterial bool `json:"needs_material"`
	NeedsPower    bool `json:"needs_power"`

	// NeedsSupport requires terrain with the heavy ground-support
	// affordance. Never checked for impassable-solid buildings, which
	// may be built on any terrain.
	NeedsSupport bool `json:"needs_support"`

	// ImpassableSolid marks wall-like buildings that may sit on any
	// terrain and tolerate clearable wild growth on their footprint.
	ImpassableSolid bool `json:"impassable_solid"`

	// FueledIndoorsOnly marks combustion-fueled buildings that are
	// heavily penalized, not rejected, when placed outdoors.
	FueledIndoorsOnly bool `json:"fueled_indoors_only"`

	TechPrereq string `json:"tech_prereq,omitempty"`
}

func (d BuildingDescriptor) Valid() bool {
	return d.Type != "" && d.Width > 0 && d.Depth > 0
}
