package planning

// Simulation time is tick-driven; one sim minute is 60 ticks.
const TicksPerMinute = 60

// Scoring.
const (
	ScoreMin  = 0
	ScoreMax  = 100
	BaseScore = 50

	// Combined-score merging divides each pass's factors by this weight.
	CombinedFactorWeight = 3
)

// Safety pass.
const (
	HostileRejectRadius  = 15
	HostilePenaltyRadius = 30
	HostilePenalty       = -20
	HazardPenaltyRadius  = 8
	HazardPenalty        = -10
	HomeZoneBonus        = 15
	NearStructuresBonus  = 12
	MidStructuresBonus   = 6
	FarStructuresCutoff  = 40
	FarStructuresPenalty = -10
)

// Terrain pass.
const (
	FloorBonus            = 10
	IndoorMatchBonus      = 8
	OutdoorMatchBonus     = 8
	FueledOutdoorsPenalty = -30
)

// Utility pass.
const (
	UtilityNoneBonus    = 5
	UtilitySearchRadius = 6
	UtilityNearBonus    = 20
	UtilityFarBonus     = 5
)

// Location finder.
const (
	AlignmentGrid         = 2
	AlignmentBonus        = 5
	AdjacencyRadius       = 12
	AdjacencyBonus        = 10
	FarmFertilityBonus    = 10
	EarlyExitScore        = 75
	EarlyExitCandidates   = 5
	StartRegionCoarseStep = 6
	StartRegionEdgeMargin = 8
)

// Rejection cache.
const (
	RejectionCooldownTicks   = 30 * TicksPerMinute
	RejectionShortRetryTicks = 2 * TicksPerMinute
	RejectionMaxAttempts     = 3
)

// Construction tracking.
const (
	WallsCompleteThreshold = 0.8
	MonitorIntervalTicks   = 15
	CompletedGraceTicks    = 5 * TicksPerMinute
)
