package catalog

// RoleProfile drives search geometry and scoring defaults per role. Looked
// up once per search instead of branching on the role at every call site.
type RoleProfile struct {
	MinRadius    int
	MaxRadius    int
	RadialStep   int
	AngleStepDeg int

	PrefersIndoor    bool
	RequiresEnclosed bool
	RequiresOutdoor  bool
	MinFertility     int

	// AdjacencyRole, when set, grants a proximity bonus for candidates
	// near an existing structure of that role.
	AdjacencyRole BuildingRole
}

var roleProfiles = map[BuildingRole]RoleProfile{
	RoleBedroom:    {MinRadius: 2, MaxRadius: 14, RadialStep: 2, AngleStepDeg: 30, PrefersIndoor: true, RequiresEnclosed: true, AdjacencyRole: RoleBedroom},
	RoleKitchen:    {MinRadius: 2, MaxRadius: 14, RadialStep: 2, AngleStepDeg: 30, PrefersIndoor: true, AdjacencyRole: RoleStorage},
	RoleStorage:    {MinRadius: 2, MaxRadius: 16, RadialStep: 2, AngleStepDeg: 30, PrefersIndoor: true, AdjacencyRole: RoleKitchen},
	RoleWorkshop:   {MinRadius: 3, MaxRadius: 18, RadialStep: 3, AngleStepDeg: 30, PrefersIndoor: true, AdjacencyRole: RoleStorage},
	RolePower:      {MinRadius: 3, MaxRadius: 20, RadialStep: 3, AngleStepDeg: 30},
	RoleFarm:       {MinRadius: 6, MaxRadius: 34, RadialStep: 4, AngleStepDeg: 20, RequiresOutdoor: true, MinFertility: 55},
	RoleDefense:    {MinRadius: 8, MaxRadius: 40, RadialStep: 4, AngleStepDeg: 15},
	RoleRecreation: {MinRadius: 2, MaxRadius: 16, RadialStep: 2, AngleStepDeg: 30, PrefersIndoor: true},
	RoleResearch:   {MinRadius: 3, MaxRadius: 16, RadialStep: 2, AngleStepDeg: 30, PrefersIndoor: true},
	RoleMedical:    {MinRadius: 2, MaxRadius: 14, RadialStep: 2, AngleStepDeg: 30, PrefersIndoor: true, AdjacencyRole: RoleBedroom},
	RoleGeneral:    {MinRadius: 2, MaxRadius: 18, RadialStep: 2, AngleStepDeg: 30},
}

func ProfileFor(role BuildingRole) RoleProfile {
	if p, ok := roleProfiles[role]; ok {
		return p
	}
	return roleProfiles[RoleGeneral]
}

// WidenForPopulation grows the outer search radius as the colony grows:
// one radial step per five friendly agents, at most two extra steps.
func (p RoleProfile) WidenForPopulation(population int) RoleProfile {
	steps := population / 5
	if steps > 2 {
		steps = 2
	}
	p.MaxRadius += steps * p.RadialStep
	return p
}
