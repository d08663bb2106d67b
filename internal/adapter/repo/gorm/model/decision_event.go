package model

// DecisionEvent is one appended planner diagnostic: a search outcome, a
// placement, or a construction stage transition. The full record is kept
// as a JSON payload; the indexed columns support filtering.
type DecisionEvent struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	Tick         int64 `gorm:"index"`
	Kind         string
	BuildingType string
	Outcome      string
	Payload      []byte
}

func (DecisionEvent) TableName() string {
	return "decision_events"
}
