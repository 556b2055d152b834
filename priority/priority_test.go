package priority

import (
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

func speedyBuild(speed int) types.Build {
	return types.Build{
		Species: types.Species{BaseStats: types.BaseStats{Speed: speed}},
		Nature:  types.Hardy,
		EVs:     types.EVSpread{},
		IVs:     types.DefaultIVs(),
		Level:   50,
	}
}

func TestFakeOutBeatsPranksterTailwindBeatsZeroPriority(t *testing.T) {
	fakeOut := Actor{
		Name:  "Incineroar",
		Build: speedyBuild(60),
		Move:  types.Move{Name: "Fake Out", Priority: 3, Category: types.Physical},
	}
	tailwind := Actor{
		Name:    "Tornadus",
		Build:   speedyBuild(111),
		Move:    types.Move{Name: "Tailwind", Priority: 0, Category: types.Status},
		Ability: types.AbilityPrankster,
	}
	opposingZero := Actor{
		Name:  "OpposingMon",
		Build: speedyBuild(90),
		Move:  types.Move{Name: "Some Attack", Priority: 0, Category: types.Physical},
	}

	ranked := Resolve([]Actor{opposingZero, tailwind, fakeOut}, false)

	if ranked[0].Actor.Name != "Incineroar" {
		t.Fatalf("expected Fake Out first, got %s", ranked[0].Actor.Name)
	}
	if ranked[1].Actor.Name != "Tornadus" {
		t.Fatalf("expected Prankster Tailwind second, got %s", ranked[1].Actor.Name)
	}
	if ranked[2].Actor.Name != "OpposingMon" {
		t.Fatalf("expected 0-priority move last, got %s", ranked[2].Actor.Name)
	}
	if ranked[1].Priority <= ranked[2].Priority {
		t.Fatalf("prankster-boosted Tailwind (%d) must exceed 0-priority move (%d)", ranked[1].Priority, ranked[2].Priority)
	}
}

func TestDarkTypeImmuneToPranksterBoost(t *testing.T) {
	taunt := Actor{
		Name:             "Whimsicott",
		Build:            speedyBuild(116),
		Move:             types.Move{Name: "Taunt", Priority: 0, Category: types.Status},
		Ability:          types.AbilityPrankster,
		TargetIsDarkType: true,
	}
	if got := EffectivePriority(taunt); got != 0 {
		t.Fatalf("Prankster must not boost priority against a Dark-type target, got %d", got)
	}

	notDark := taunt
	notDark.TargetIsDarkType = false
	if got := EffectivePriority(notDark); got != 1 {
		t.Fatalf("Prankster should boost a status move by 1 against a non-Dark target, got %d", got)
	}
}

func TestTrickRoomInvertsSpeedOrder(t *testing.T) {
	fast := Actor{Name: "Fast", Build: speedyBuild(150), Move: types.Move{Priority: 0}}
	slow := Actor{Name: "Slow", Build: speedyBuild(40), Move: types.Move{Priority: 0}}

	normal := Resolve([]Actor{slow, fast}, false)
	if normal[0].Actor.Name != "Fast" {
		t.Fatalf("without Trick Room, faster actor should move first, got %s", normal[0].Actor.Name)
	}

	trickRoom := Resolve([]Actor{slow, fast}, true)
	if trickRoom[0].Actor.Name != "Slow" {
		t.Fatalf("under Trick Room, slower actor should move first, got %s", trickRoom[0].Actor.Name)
	}
}

func TestTailwindDoublesSpeed(t *testing.T) {
	plain := Actor{Build: speedyBuild(100)}
	tail := Actor{Build: speedyBuild(100), TailwindActive: true}

	if got, want := EffectiveSpeed(tail), EffectiveSpeed(plain)*2; got != want {
		t.Fatalf("Tailwind should double speed: got %d want %d", got, want)
	}
}

func TestParalysisHalvesSpeedUnlessQuickFeet(t *testing.T) {
	base := speedyBuild(90)
	plain := Actor{Build: base}
	paralyzed := Actor{Build: base, Paralyzed: true}
	quickFeet := Actor{Build: base, Paralyzed: true, QuickFeet: true}

	full := EffectiveSpeed(plain)
	if got := EffectiveSpeed(paralyzed); got != full/2 {
		t.Fatalf("paralysis should halve speed: got %d want %d", got, full/2)
	}
	if got := EffectiveSpeed(quickFeet); got <= EffectiveSpeed(paralyzed) {
		t.Fatalf("Quick Feet should outrun a plain paralyzed speed: quickfeet=%d paralyzed=%d", got, EffectiveSpeed(paralyzed))
	}
}
