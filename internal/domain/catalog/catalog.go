package catalog

import "colonyplan/internal/domain/grid"

var buildings = map[string]BuildingDescriptor{
	// shelter is the bootstrap room: general role, no enclosure demands,
	// so it places on a virgin map.
	"shelter": {
		Type: "shelter", Width: 4, Depth: 4, Role: RoleGeneral,
		Category: grid.CategoryBuilding, NeedsMaterial: true,
	},
	"bedroom": {
		Type: "bedroom", Width: 3, Depth: 3, Role: RoleBedroom,
		Category: grid.CategoryBuilding, NeedsMaterial: true,
	},
	"kitchen": {
		Type: "kitchen", Width: 3, Depth: 3, Role: RoleKitchen,
		Category: grid.CategoryBuilding, NeedsMaterial: true, FueledIndoorsOnly: true,
	},
	"storehouse": {
		Type: "storehouse", Width: 4, Depth: 3, Role: RoleStorage,
		Category: grid.CategoryBuilding, NeedsMaterial: true,
	},
	"workshop": {
		Type: "workshop", Width: 4, Depth: 3, Role: RoleWorkshop,
		Category: grid.CategoryBuilding, NeedsMaterial: true, NeedsSupport: true,
		TechPrereq: "smithing",
	},
	"generator": {
		Type: "generator", Width: 2, Depth: 2, Role: RolePower,
		Category: grid.CategoryPower, NeedsMaterial: true, NeedsSupport: true,
		FueledIndoorsOnly: true, TechPrereq: "electricity",
	},
	"farm_plot": {
		Type: "farm_plot", Width: 5, Depth: 5, Role: RoleFarm,
		Category: grid.CategoryBuilding,
	},
	"turret": {
		Type: "turret", Width: 1, Depth: 1, Role: RoleDefense,
		Category: grid.CategoryBuilding, NeedsMaterial: true, NeedsPower: true,
		TechPrereq: "gun_turrets",
	},
	"rec_room": {
		Type: "rec_room", Width: 4, Depth: 4, Role: RoleRecreation,
		Category: grid.CategoryBuilding, NeedsMaterial: true,
	},
	"research_bench": {
		Type: "research_bench", Width: 3, Depth: 2, Role: RoleResearch,
		Category: grid.CategoryBuilding, NeedsMaterial: true, NeedsPower: true,
	},
	"infirmary": {
		Type: "infirmary", Width: 3, Depth: 3, Role: RoleMedical,
		Category: grid.CategoryBuilding, NeedsMaterial: true, TechPrereq: "medicine",
	},
	"wall": {
		Type: "wall", Width: 1, Depth: 1, Role: RoleDefense,
		Category: grid.CategoryWall, NeedsMaterial: true, ImpassableSolid: true,
	},
	"door": {
		Type: "door", Width: 1, Depth: 1, Role: RoleGeneral,
		Category: grid.CategoryDoor, NeedsMaterial: true,
	},
}

func Descriptor(buildingType string) (BuildingDescriptor, bool) {
	d, ok := buildings[buildingType]
	return d, ok
}

func Types() []string {
	out := make([]string, 0, len(buildings))
	for k := range buildings {
		out = append(out, k)
	}
	return out
}
