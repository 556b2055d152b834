package chip

import (
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

func TestBadlyPoisonedThreeTurnRollUp(t *testing.T) {
	series := BadlyPoisonedSeries(200, 3)
	results := RollUp(200, series)

	want := []int{188, 163, 126}
	if len(results) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(results))
	}
	for i, r := range results {
		if r.HP != want[i] {
			t.Fatalf("turn %d: got HP %d, want %d", i+1, r.HP, want[i])
		}
	}
}

func TestSandstormImmuneForRockGroundSteel(t *testing.T) {
	ctx := Context{MaxHP: 160, Weather: types.Sand, DefenderTypes: types.NewTypeList(types.Steel)}
	if got := TurnDelta(ctx); got != 0 {
		t.Fatalf("Steel-type should be immune to sandstorm chip, got delta %d", got)
	}
}

func TestSandstormDamagesNonImmuneType(t *testing.T) {
	ctx := Context{MaxHP: 160, Weather: types.Sand, DefenderTypes: types.NewTypeList(types.Normal)}
	if got := TurnDelta(ctx); got != -10 {
		t.Fatalf("expected -10 sandstorm chip (160/16), got %d", got)
	}
}

func TestMagicGuardNullifiesAllResidualDamage(t *testing.T) {
	ctx := Context{
		MaxHP:         160,
		Weather:       types.Sand,
		DefenderTypes: types.NewTypeList(types.Normal),
		Burned:        true,
		Poisoned:      true,
		Ability:       types.AbilityMagicGuard,
	}
	if got := TurnDelta(ctx); got != 0 {
		t.Fatalf("Magic Guard should nullify all residual damage, got delta %d", got)
	}
}

func TestLeftoversHealsEachTurn(t *testing.T) {
	ctx := Context{MaxHP: 160, Item: types.ItemLeftovers}
	if got := TurnDelta(ctx); got != 10 {
		t.Fatalf("expected +10 leftovers heal, got %d", got)
	}
}

func TestRollUpStopsAtFaint(t *testing.T) {
	series := []Context{
		{MaxHP: 100, BadlyPoisoned: true, ToxicCounter: 15},
		{MaxHP: 100, BadlyPoisoned: true, ToxicCounter: 15},
	}
	results := RollUp(50, series)
	if len(results) != 1 {
		t.Fatalf("expected roll-up to stop at the fainting turn, got %d turns", len(results))
	}
	if !results[0].Fainted {
		t.Fatal("expected the first turn to report fainted")
	}
}
