package catalog

import "testing"

func TestAllDescriptorsAreValid(t *testing.T) {
	for _, name := range Types() {
		d, ok := Descriptor(name)
		if !ok {
			t.Fatalf("type %q listed but not resolvable", name)
		}
		if !d.Valid() {
			t.Fatalf("descriptor %q is invalid: %+v", name, d)
		}
		if d.Type != name {
			t.Fatalf("descriptor %q has mismatched type %q", name, d.Type)
		}
	}
}

func TestProfileForFallsBackToGeneral(t *testing.T) {
	got := ProfileFor(BuildingRole("landing_pad"))
	want := ProfileFor(RoleGeneral)
	if got != want {
		t.Fatalf("unknown role should use the general profile, got %+v", got)
	}
}

func TestWidenForPopulation(t *testing.T) {
	base := ProfileFor(RoleGeneral)

	if got := base.WidenForPopulation(4); got.MaxRadius != base.MaxRadius {
		t.Fatalf("under five colonists should not widen, got %d", got.MaxRadius)
	}
	if got := base.WidenForPopulation(5); got.MaxRadius != base.MaxRadius+base.RadialStep {
		t.Fatalf("five colonists should widen one step, got %d", got.MaxRadius)
	}
	// cap at two extra steps no matter how large the colony grows
	if got := base.WidenForPopulation(50); got.MaxRadius != base.MaxRadius+2*base.RadialStep {
		t.Fatalf("widening should cap at two steps, got %d", got.MaxRadius)
	}
}
