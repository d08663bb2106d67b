package locate

import (
	"math"
	"sort"

	"colonyplan/internal/app/ports"
	"colonyplan/internal/domain/catalog"
	"colonyplan/internal/domain/grid"
	"colonyplan/internal/domain/planning"

	"github.com/rs/zerolog"
)

// AreaChecker is the footprint validation dependency; the concrete
// implementation is validate.AreaValidator.
type AreaChecker interface {
	BasicCheck(d catalog.BuildingDescriptor, origin grid.Cell, o grid.Orientation) bool
	Validate(d catalog.BuildingDescriptor, origin grid.Cell, o grid.Orientation) planning.ValidationResult
}

// PlacementScorer is the combined scoring dependency; the concrete
// implementation is validate.PlacementValidator.
type PlacementScorer interface {
	CombinedScore(d catalog.BuildingDescriptor, cell grid.Cell, o grid.Orientation) *planning.PlacementScore
}

// SearchResult reports one finder invocation, including the diagnostics the
// decision log wants.
type SearchResult struct {
	Found      bool
	Best       planning.CandidateLocation
	Top        []planning.CandidateLocation
	Evaluated  int
	CacheSkips int
}

// Finder drives the expanding-ring search for the best placement of one
// building. All mutable search state (the rejection cache) is owned here,
// per world session.
type Finder struct {
	World      ports.WorldProvider
	Structures ports.StructureRegistry
	Agents     ports.AgentRoster
	Area       AreaChecker
	Scorer     PlacementScorer
	Cache      *RejectionCache
	Log        zerolog.Logger
}

// FindBest enumerates candidate cells in expanding rings around the colony
// centroid (or the best start region on a virgin map), validates and scores
// each, and returns the top-ranked candidate.
func (f *Finder) FindBest(d catalog.BuildingDescriptor, nowTick int64) SearchResult {
	origin := f.referenceOrigin()
	profile := catalog.ProfileFor(d.Role).WidenForPopulation(f.Agents.FriendlyCount())
	bounds := f.World.Bounds()

	var result SearchResult
	var candidates []planning.CandidateLocation
	visited := map[grid.Cell]bool{}
	highScoring := 0

search:
	for r := profile.MinRadius; r <= profile.MaxRadius; r += profile.RadialStep {
		for deg := 0; deg < 360; deg += profile.AngleStepDeg {
			rad := float64(deg) * math.Pi / 180
			cell := snapToGrid(origin.Add(
				int(math.Round(float64(r)*math.Cos(rad))),
				int(math.Round(float64(r)*math.Sin(rad))),
			))
			if visited[cell] {
				continue
			}
			visited[cell] = true
			if !bounds.Contains(cell) {
				continue
			}
			if _, skip := f.Cache.ShouldSkip(d.Type, cell, nowTick); skip {
				result.CacheSkips++
				continue
			}

			result.Evaluated++
			orientation, vres, ok := f.firstValidOrientation(d, cell)
			if !ok {
				f.Cache.RecordFailure(d.Type, cell, nowTick, string(vres.Reason))
				continue
			}

			score := f.Scorer.CombinedScore(d, cell, orientation)
			if !score.IsValid() {
				f.Cache.RecordFailure(d.Type, cell, nowTick, firstOrEmpty(score.Rejections()))
				continue
			}
			if !f.applyRoleConstraints(profile, cell, score) {
				f.Cache.RecordFailure(d.Type, cell, nowTick, firstOrEmpty(score.Rejections()))
				continue
			}
			f.applyProximityBonuses(profile, cell, score)

			candidates = append(candidates, planning.CandidateLocation{
				Cell:        cell,
				Orientation: orientation,
				Score:       score,
			})
			if score.Total() >= planning.EarlyExitScore {
				highScoring++
				if highScoring >= planning.EarlyExitCandidates {
					break search
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := candidates[i].Score.Total(), candidates[j].Score.Total()
		if si != sj {
			return si > sj
		}
		return candidates[i].Cell.DistanceTo(origin) < candidates[j].Cell.DistanceTo(origin)
	})
	if len(candidates) > 3 {
		result.Top = candidates[:3]
	} else {
		result.Top = candidates
	}
	f.logTopCandidates(d, result.Top)

	// Final per-orientation re-validation: the world may have shifted since
	// a candidate was scored.
	for _, cand := range candidates {
		if o, _, ok := f.firstValidOrientation(d, cand.Cell); ok {
			cand.Orientation = o
			result.Found = true
			result.Best = cand
			return result
		}
	}
	return result
}

// firstValidOrientation tries the four rotations in order and returns the
// first that survives the fast check plus full area validation.
func (f *Finder) firstValidOrientation(d catalog.BuildingDescriptor, cell grid.Cell) (grid.Orientation, planning.ValidationResult, bool) {
	var last planning.ValidationResult
	for _, o := range grid.Orientations() {
		if !f.Area.BasicCheck(d, cell, o) {
			last = planning.ValidationResult{Reason: planning.ReasonOccupied, Detail: "basic check failed"}
			continue
		}
		res := f.Area.Validate(d, cell, o)
		if res.Valid {
			return o, res, true
		}
		last = res
	}
	return grid.OrientNorth, last, false
}

func (f *Finder) applyRoleConstraints(profile catalog.RoleProfile, cell grid.Cell, score *planning.PlacementScore) bool {
	tile, ok := f.World.TileAt(cell)
	if !ok {
		score.Reject("no terrain")
		return false
	}
	if profile.RequiresEnclosed && !(tile.Indoors && tile.Enclosed) {
		score.Reject("requires a fully enclosed room")
		return false
	}
	if profile.RequiresOutdoor {
		if tile.Indoors {
			score.Reject("requires outdoor placement")
			return false
		}
		if tile.Fertility < profile.MinFertility {
			score.Reject("insufficient fertility")
			return false
		}
		score.AddFactor("fertility", planning.FarmFertilityBonus)
	}
	return true
}

func (f *Finder) applyProximityBonuses(profile catalog.RoleProfile, cell grid.Cell, score *planning.PlacementScore) {
	aligned, adjacent := false, false
	for _, s := range f.Structures.Structures() {
		if !s.Owned {
			continue
		}
		center := s.Center()
		dist := center.DistanceTo(cell)
		if dist > planning.AdjacencyRadius {
			continue
		}
		if !aligned && (center.X == cell.X || center.Z == cell.Z) {
			aligned = true
		}
		if !adjacent && profile.AdjacencyRole != "" && s.Role == profile.AdjacencyRole {
			adjacent = true
		}
	}
	if aligned {
		score.AddFactor("alignment", planning.AlignmentBonus)
	}
	if adjacent {
		score.AddFactor("adjacency", planning.AdjacencyBonus)
	}
}

// referenceOrigin is the centroid of owned structures, or the best start
// region heuristic on an empty map.
func (f *Finder) referenceOrigin() grid.Cell {
	sumX, sumZ, n := 0, 0, 0
	for _, s := range f.Structures.Structures() {
		if !s.Owned {
			continue
		}
		c := s.Center()
		sumX += c.X
		sumZ += c.Z
		n++
	}
	if n == 0 {
		return f.bestStartRegion()
	}
	return grid.Cell{X: sumX / n, Z: sumZ / n}
}

func (f *Finder) logTopCandidates(d catalog.BuildingDescriptor, top []planning.CandidateLocation) {
	for i, cand := range top {
		f.Log.Debug().
			Str("building", d.Type).
			Int("rank", i+1).
			Int("x", cand.Cell.X).
			Int("z", cand.Cell.Z).
			Str("orientation", string(cand.Orientation)).
			Int("score", cand.Score.Total()).
			Str("breakdown", cand.Score.Breakdown()).
			Msg("placement candidate")
	}
}

func snapToGrid(c grid.Cell) grid.Cell {
	g := planning.AlignmentGrid
	return grid.Cell{X: (c.X / g) * g, Z: (c.Z / g) * g}
}

func firstOrEmpty(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	return reasons[0]
}
