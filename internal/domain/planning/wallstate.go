package planning

// WallStateCount tallies the per-cell classification of a cell set against
// one structure category. Used for wall cells and door cells alike.
type WallStateCount struct {
	Built      int `json:"built"`
	InProgress int `json:"in_progress"`
	Planned    int `json:"planned"`
	Empty      int `json:"empty"`
}

func (w WallStateCount) Total() int {
	return w.Built + w.InProgress + w.Planned + w.Empty
}

func (w WallStateCount) CompletionPercent() float64 {
	total := w.Total()
	if total == 0 {
		return 0
	}
	return float64(w.Built) / float64(total)
}

// AnyActivity reports whether construction has visibly started on the set.
func (w WallStateCount) AnyActivity() bool {
	return w.Built > 0 || w.InProgress > 0 || w.Planned > 0
}
