package planning

import (
	"fmt"
	"sort"
	"strings"
)

type Factor struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PlacementScore accumulates signed factor contributions into a total
// clamped to [ScoreMin, ScoreMax]. A rejected score stays rejected no
// matter what is added afterwards.
type PlacementScore struct {
	factors    []Factor
	total      int
	rejected   bool
	rejections []string
}

func NewScore() *PlacementScore {
	return &PlacementScore{}
}

func (s *PlacementScore) AddFactor(name string, value int) {
	s.factors = append(s.factors, Factor{Name: name, Value: value})
	sum := 0
	for _, f := range s.factors {
		sum += f.Value
	}
	s.total = clampScore(sum)
}

func (s *PlacementScore) Reject(reason string) {
	s.rejected = true
	s.rejections = append(s.rejections, reason)
}

func (s *PlacementScore) Total() int {
	return s.total
}

func (s *PlacementScore) IsValid() bool {
	return !s.rejected
}

func (s *PlacementScore) Rejections() []string {
	return s.rejections
}

func (s *PlacementScore) Factors() []Factor {
	out := make([]Factor, len(s.factors))
	copy(out, s.factors)
	return out
}

// TopFactors returns the n factor names with the greatest absolute
// contribution, for "why was this spot chosen" diagnostics.
func (s *PlacementScore) TopFactors(n int) []string {
	sorted := s.Factors()
	sort.SliceStable(sorted, func(i, j int) bool {
		return absInt(sorted[i].Value) > absInt(sorted[j].Value)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]string, 0, n)
	for _, f := range sorted[:n] {
		out = append(out, f.Name)
	}
	return out
}

func (s *PlacementScore) Breakdown() string {
	if s.rejected {
		return "rejected: " + strings.Join(s.rejections, "; ")
	}
	parts := make([]string, 0, len(s.factors)+1)
	for _, f := range s.factors {
		parts = append(parts, fmt.Sprintf("%s=%+d", f.Name, f.Value))
	}
	parts = append(parts, fmt.Sprintf("total=%d", s.total))
	return strings.Join(parts, " ")
}

func clampScore(v int) int {
	if v < ScoreMin {
		return ScoreMin
	}
	if v > ScoreMax {
		return ScoreMax
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
