package search

import (
	"context"
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

func TestEnteiNatureSelectionPrefersAdamant(t *testing.T) {
	entei := types.Species{
		Name:      "entei",
		BaseStats: types.BaseStats{HP: 115, Attack: 115, Defense: 85, SpAttack: 90, SpDefense: 75, Speed: 100},
		Types:     types.NewTypeList(types.Fire),
	}

	result := SelectNature(NatureSelectionInput{
		Species:      entei,
		BoostedStat:  types.Attack,
		Level:        50,
		SpeedTarget:  137,
		OffensiveEVs: 252,
	})

	if result.Nature != types.Adamant {
		t.Fatalf("expected Adamant, got %v", result.Nature)
	}
	if result.FinalOffense < 167 {
		t.Fatalf("expected final Attack >= 167, got %d", result.FinalOffense)
	}
	if result.FinalSpeed < 137 {
		t.Fatalf("expected final Speed >= 137, got %d", result.FinalSpeed)
	}
}

func TestSpeedBenchmarkReturnsSmallestBreakpoint(t *testing.T) {
	ev, ok := SpeedBenchmark(100, 31, 50, types.Jolly, 150)
	if !ok {
		t.Fatal("expected a reachable breakpoint")
	}
	if !types.IsBreakpoint(ev) {
		t.Fatalf("returned EV %d is not a valid breakpoint", ev)
	}
}

func urshifuSingleStrike() types.Build {
	return types.Build{
		Species: types.Species{
			Name:      "urshifu-single-strike",
			BaseStats: types.BaseStats{HP: 100, Attack: 130, Defense: 100, SpAttack: 63, SpDefense: 60, Speed: 97},
			Types:     types.NewDualTypeList(types.Fighting, types.Dark),
		},
		Nature: types.Adamant,
		EVs:    types.EVSpread{Attack: 252, Speed: 252, HP: 4},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
}

func landorusIncarnate() types.Build {
	return types.Build{
		Species: types.Species{
			Name:      "landorus",
			BaseStats: types.BaseStats{HP: 89, Attack: 125, Defense: 90, SpAttack: 115, SpDefense: 80, Speed: 101},
			Types:     types.NewDualTypeList(types.Ground, types.Flying),
		},
		Nature: types.Modest,
		EVs:    types.EVSpread{SpAttack: 252, Speed: 252, HP: 4},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
}

func ogerponWellspring() types.Species {
	return types.Species{
		Name:      "ogerpon-wellspring",
		BaseStats: types.BaseStats{HP: 80, Attack: 120, Defense: 84, SpAttack: 60, SpDefense: 96, Speed: 110},
		Types:     types.NewDualTypeList(types.Grass, types.Water),
	}
}

func TestDualSurvivalSequentialAndParallelAgree(t *testing.T) {
	wickedBlow := types.Move{Name: "Wicked Blow", Type: types.Dark, Category: types.Physical, BasePower: 75, HasBasePower: true, MakesContact: true}
	sludgeBomb := types.Move{Name: "Sludge Bomb", Type: types.Poison, Category: types.Special, BasePower: 90, HasBasePower: true, SecondaryEffectChance: 30}

	attack1 := SurvivalAttack{Move: wickedBlow, Attacker: urshifuSingleStrike(), Ctx: types.ModifierContext{AttackerAbility: "sheer-force"}}
	attack2 := SurvivalAttack{Move: sludgeBomb, Attacker: landorusIncarnate(), Ctx: types.ModifierContext{}}

	seq := SurviveDual(attack1, attack2, ogerponWellspring(), types.Jolly, 50, 93.75)
	par, err := SurviveDualParallel(context.Background(), attack1, attack2, ogerponWellspring(), types.Jolly, 50, 93.75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seq.Feasible != par.Feasible {
		t.Fatalf("sequential and parallel disagree on feasibility: seq=%v par=%v", seq.Feasible, par.Feasible)
	}
	if seq.Feasible && seq.EVs != par.EVs {
		t.Fatalf("sequential and parallel disagree on spread: seq=%+v par=%+v", seq.EVs, par.EVs)
	}
	if seq.EVs.Total() > types.MaxEVTotal {
		t.Fatalf("reported spread exceeds EV budget: %+v", seq.EVs)
	}
}
