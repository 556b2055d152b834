package damage

import (
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

func landorus() types.Build {
	return types.Build{
		Species: types.Species{
			Name:      "landorus-therian",
			BaseStats: types.BaseStats{HP: 89, Attack: 145, Defense: 90, SpAttack: 105, SpDefense: 80, Speed: 91},
			Types:     types.NewDualTypeList(types.Ground, types.Flying),
		},
		Nature: types.Adamant,
		EVs:    types.EVSpread{HP: 4, Attack: 252, Speed: 252},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
}

func ferrothorn() types.Build {
	return types.Build{
		Species: types.Species{
			Name:      "ferrothorn",
			BaseStats: types.BaseStats{HP: 74, Attack: 94, Defense: 131, SpAttack: 54, SpDefense: 116, Speed: 20},
			Types:     types.NewDualTypeList(types.Grass, types.Steel),
		},
		Nature: types.Relaxed,
		EVs:    types.EVSpread{HP: 252, Defense: 252},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
}

func earthquake() types.Move {
	return types.Move{Name: "Earthquake", Type: types.Ground, Category: types.Physical, BasePower: 100, HasBasePower: true, Accuracy: 100, Target: types.TargetAllAdjacent}
}

func TestEarthquakeNeutralSingleRolls(t *testing.T) {
	attacker := landorus()
	defender := types.Build{
		Species: types.Species{
			Name:      "incineroar",
			BaseStats: types.BaseStats{HP: 95, Attack: 115, Defense: 90, SpAttack: 80, SpDefense: 90, Speed: 60},
			Types:     types.NewDualTypeList(types.Fire, types.Dark),
		},
		Nature: types.Careful,
		EVs:    types.EVSpread{HP: 252, SpDefense: 252},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
	ctx := types.ModifierContext{AttackerGrounded: true, DefenderGrounded: true}

	result := Calculate(earthquake(), attacker, defender, ctx)
	if result.IsStatus {
		t.Fatal("earthquake must be classified as damaging")
	}
	if result.MinDamage <= 0 || result.MaxDamage < result.MinDamage {
		t.Fatalf("rolls out of order: min=%d max=%d", result.MinDamage, result.MaxDamage)
	}
	for i := 1; i < types.NumRolls; i++ {
		if result.Rolls[i] < result.Rolls[i-1] {
			t.Fatalf("rolls not monotonic at index %d: %v", i, result.Rolls)
		}
	}
}

func TestOgerponHearthflameOHKOsFerrothorn(t *testing.T) {
	attacker := types.Build{
		Species: types.Species{
			Name:      "ogerpon-hearthflame",
			BaseStats: types.BaseStats{HP: 80, Attack: 120, Defense: 84, SpAttack: 60, SpDefense: 96, Speed: 110},
			Types:     types.NewDualTypeList(types.Grass, types.Fire),
		},
		Nature:     types.Adamant,
		EVs:        types.EVSpread{HP: 4, Attack: 252, Speed: 252},
		IVs:        types.DefaultIVs(),
		Level:      50,
		Item:       "Hearthflame Mask",
		TeraActive: true,
		TeraType:   types.Fire,
	}
	move := types.Move{Name: "Ivy Cudgel", Type: types.Fire, Category: types.Physical, BasePower: 100, HasBasePower: true, Target: types.TargetSingleAdjacent, MakesContact: true}
	defender := ferrothorn()
	ctx := types.ModifierContext{AttackerItem: "hearthflame-mask"}

	result := Calculate(move, attacker, defender, ctx)
	if result.KO != types.GuaranteedOHKO {
		t.Fatalf("expected guaranteed OHKO, got %v (min=%d max=%d hp=%d)", result.KO, result.MinDamage, result.MaxDamage, result.DefenderHP)
	}
}

func TestSpreadMoveIsThreeQuartersInDoubles(t *testing.T) {
	attacker := landorus()
	defender := ferrothorn()
	move := earthquake()

	single := Calculate(move, attacker, defender, types.ModifierContext{AttackerGrounded: true, DefenderGrounded: true})
	spread := Calculate(move, attacker, defender, types.ModifierContext{
		AttackerGrounded: true, DefenderGrounded: true,
		IsDoubles: true, MultipleTargets: true,
	})

	if spread.MaxDamage >= single.MaxDamage {
		t.Fatalf("spread damage %d should be less than single-target damage %d", spread.MaxDamage, single.MaxDamage)
	}
	ratio := float64(spread.MaxDamage) / float64(single.MaxDamage)
	if ratio > 0.80 || ratio < 0.70 {
		t.Fatalf("spread ratio %.3f not close to 0.75", ratio)
	}
}

func TestCommanderDoublesBothStats(t *testing.T) {
	attacker := landorus()
	defender := ferrothorn()
	move := earthquake()

	base := Calculate(move, attacker, defender, types.ModifierContext{AttackerGrounded: true, DefenderGrounded: true})
	commanded := Calculate(move, attacker, defender, types.ModifierContext{
		AttackerGrounded: true, DefenderGrounded: true,
		CommanderActive: true,
	})

	if commanded.MaxDamage <= base.MaxDamage {
		t.Fatalf("commander-boosted damage %d should exceed base %d", commanded.MaxDamage, base.MaxDamage)
	}
}

func TestZeroEffectivenessShortCircuitsToNoKO(t *testing.T) {
	attacker := landorus()
	defender := types.Build{
		Species: types.Species{
			Name:      "corviknight",
			BaseStats: types.BaseStats{HP: 98, Attack: 87, Defense: 105, SpAttack: 53, SpDefense: 85, Speed: 67},
			Types:     types.NewDualTypeList(types.Flying, types.Steel),
		},
		Nature: types.Impish,
		EVs:    types.EVSpread{HP: 252, Defense: 252},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
	move := types.Move{Name: "Earthquake", Type: types.Ground, Category: types.Physical, BasePower: 100, HasBasePower: true, Target: types.TargetAllAdjacent}
	ctx := types.ModifierContext{AttackerGrounded: true}

	result := Calculate(move, attacker, defender, ctx)
	if result.MaxDamage != 0 || result.KO != types.NoKO {
		t.Fatalf("ground move vs flying immune target should deal 0 damage, got max=%d ko=%v", result.MaxDamage, result.KO)
	}
}

func TestStatusMoveShortCircuits(t *testing.T) {
	move := types.Move{Name: "Will-O-Wisp", Type: types.Fire, Category: types.Status}
	result := Calculate(move, landorus(), ferrothorn(), types.ModifierContext{})
	if !result.IsStatus {
		t.Fatal("status move must short-circuit with IsStatus true")
	}
}

func TestMultiHitMoveDefaultsToMaxHits(t *testing.T) {
	attacker := types.Build{
		Species: types.Species{
			Name:      "cloyster",
			BaseStats: types.BaseStats{HP: 50, Attack: 95, Defense: 180, SpAttack: 85, SpDefense: 45, Speed: 70},
			Types:     types.NewDualTypeList(types.Water, types.Ice),
		},
		Nature: types.Adamant,
		EVs:    types.EVSpread{HP: 4, Attack: 252, Speed: 252},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
	move := types.Move{
		Name: "Icicle Spear", Type: types.Ice, Category: types.Physical, BasePower: 25, HasBasePower: true,
		Target: types.TargetSingleAdjacent, MakesContact: true,
		MultiHit: types.MultiHit{MinHits: 2, MaxHits: 5},
	}
	defender := ferrothorn()

	single := Calculate(move, attacker, defender, types.ModifierContext{MoveHits: 1})
	defaulted := Calculate(move, attacker, defender, types.ModifierContext{})

	if defaulted.MaxDamage != single.MaxDamage*5 {
		t.Fatalf("unoverridden multi-hit should default to MaxHits (5): got %d, want %d", defaulted.MaxDamage, single.MaxDamage*5)
	}
}

func TestAlwaysCritMultiHitForcesCritical(t *testing.T) {
	attacker := types.Build{
		Species: types.Species{
			Name:      "urshifu-rapid-strike",
			BaseStats: types.BaseStats{HP: 100, Attack: 130, Defense: 100, SpAttack: 63, SpDefense: 60, Speed: 97},
			Types:     types.NewDualTypeList(types.Fighting, types.Water),
		},
		Nature: types.Adamant,
		EVs:    types.EVSpread{HP: 4, Attack: 252, Speed: 252},
		IVs:    types.DefaultIVs(),
		Level:  50,
	}
	defender := ferrothorn()

	alwaysCrit := types.Move{
		Name: "Surging Strikes", Type: types.Water, Category: types.Physical, BasePower: 25, HasBasePower: true,
		Target: types.TargetSingleAdjacent, MakesContact: true,
		MultiHit: types.MultiHit{MinHits: 3, MaxHits: 3, AlwaysCrit: true},
	}
	plain := alwaysCrit
	plain.MultiHit = types.MultiHit{MinHits: 3, MaxHits: 3}

	// ctx.IsCritical is left false in both cases; AlwaysCrit must force
	// the critical hit itself rather than relying on the caller to set it.
	forced := Calculate(alwaysCrit, attacker, defender, types.ModifierContext{})
	uncrit := Calculate(plain, attacker, defender, types.ModifierContext{})

	if forced.MaxDamage <= uncrit.MaxDamage {
		t.Fatalf("AlwaysCrit move should deal more damage than the same move without it (forced crit): got %d, want > %d", forced.MaxDamage, uncrit.MaxDamage)
	}
}

func TestClassifyKOGuaranteedVsPossible(t *testing.T) {
	rolls := [types.NumRolls]int{90, 90, 91, 91, 92, 92, 93, 93, 94, 94, 95, 95, 96, 96, 97, 100}
	if got := classifyKO(rolls, 1, 89); got != types.GuaranteedOHKO {
		t.Fatalf("every roll exceeds 89 HP, expected guaranteed OHKO, got %v", got)
	}
	if got := classifyKO(rolls, 1, 95); got != types.PossibleOHKO {
		t.Fatalf("only top rolls exceed 95 HP, expected possible OHKO, got %v", got)
	}
	if got := classifyKO(rolls, 1, 1000); got == types.GuaranteedOHKO || got == types.PossibleOHKO {
		t.Fatalf("no single hit reaches 1000 HP, expected a multi-hit class, got %v", got)
	}
}
