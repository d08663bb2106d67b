package ports

type SearchOutcome string

const (
	OutcomePlaced    SearchOutcome = "placed"
	OutcomeNotFound  SearchOutcome = "not_found"
	OutcomeCacheSkip SearchOutcome = "cache_skip"
	OutcomeTickFault SearchOutcome = "tick_fault"
)

type PlannerMetrics interface {
	RecordSearch(buildingType string, outcome SearchOutcome)
}
