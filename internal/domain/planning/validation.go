package planning

type RejectReason string

const (
	ReasonOutOfBounds     RejectReason = "out_of_bounds"
	ReasonOccupied        RejectReason = "occupied"
	ReasonTerrainInvalid  RejectReason = "terrain_invalid"
	ReasonUnreachable     RejectReason = "unreachable"
	ReasonUnsafeProximity RejectReason = "unsafe_proximity"
	ReasonUtilityMissing  RejectReason = "utility_missing"
	ReasonRoleConstraint  RejectReason = "role_constraint"
	ReasonNoCandidate     RejectReason = "no_candidate"
)

// ValidationResult carries a single fatal reason (the first one hit) plus
// non-fatal warnings and informational notes. "No valid spot" is data here,
// never an error value.
type ValidationResult struct {
	Valid    bool         `json:"valid"`
	Reason   RejectReason `json:"reason,omitempty"`
	Detail   string       `json:"detail,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	Infos    []string     `json:"infos,omitempty"`
}

func ValidResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func (r *ValidationResult) Fail(reason RejectReason, detail string) {
	if !r.Valid {
		// first fatal condition wins
		return
	}
	r.Valid = false
	r.Reason = reason
	r.Detail = detail
}

func (r *ValidationResult) Warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *ValidationResult) Info(msg string) {
	r.Infos = append(r.Infos, msg)
}
