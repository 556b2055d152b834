package stats

import (
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

func TestHPFormula(t *testing.T) {
	// Incineroar: base HP 95, level 50, 31 IV, 252 EV.
	got := HP(95, 31, 252, 50)
	want := (2*95+31+252/4)*50/100 + 50 + 10
	if got != want {
		t.Fatalf("HP = %d, want %d", got, want)
	}
}

func TestOtherStatNatureRounding(t *testing.T) {
	// Landorus base Attack 125, Adamant (boosted), 252 EV, 31 IV, level 50.
	got := OtherStat(125, 31, 252, 50, 11)
	inner := (2*125+31+252/4)*50/100 + 5
	want := inner * 11 / 10
	if got != want {
		t.Fatalf("OtherStat = %d, want %d", got, want)
	}
}

func TestStatBoundsInvariant(t *testing.T) {
	base := types.BaseStats{HP: 100, Attack: 100, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: 100}
	for s := types.Attack; s <= types.Speed; s++ {
		min := Stat(s, base, types.IVSpread{}, types.EVSpread{}, 50, types.Lax /* lowers SpD, irrelevant here */)
		max := Stat(s, base, types.DefaultIVs(), types.EVSpread{HP: 252, Attack: 252, Defense: 252, SpAttack: 252, SpDefense: 252, Speed: 252}, 50, types.Adamant)
		if min > max {
			t.Fatalf("stat %v: min %d > max %d", s, min, max)
		}
	}
}

func TestFindSpeedEVsReturnsSmallestBreakpoint(t *testing.T) {
	base := 100
	ev, ok := FindSpeedEVs(base, 31, 50, 11, MaxSpeed(base))
	if !ok {
		t.Fatalf("expected to find breakpoint for max speed")
	}
	if ev != 252 {
		t.Fatalf("expected 252 EV for max speed target, got %d", ev)
	}
}

func TestFindSpeedEVsUnreachable(t *testing.T) {
	_, ok := FindSpeedEVs(5, 0, 50, 9, 1000)
	if ok {
		t.Fatalf("expected unreachable target to report false")
	}
}
