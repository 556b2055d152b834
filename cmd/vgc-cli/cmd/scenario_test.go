package cmd

import (
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

func sampleBuildInput() buildInput {
	return buildInput{
		Species: speciesInput{
			Name: "incineroar", HP: 95, Attack: 115, Defense: 90, SpAttack: 80, SpDefense: 90, Speed: 60,
			Type1: "fire", Type2: "dark",
		},
		Nature:  "careful",
		EVs:     [6]int{244, 4, 4, 0, 252, 4},
		Level:   50,
		Item:    "safety-goggles",
		Ability: "intimidate",
		Moves: []moveInput{
			{Name: "Fake Out", Type: "normal", Category: "physical", BasePower: 40, Priority: 3, MakesContact: true},
			{Name: "Knock Off", Type: "dark", Category: "physical", BasePower: 65, MakesContact: true},
		},
	}
}

func TestBuildInputToBuildParsesTypesAndNature(t *testing.T) {
	b, moves, err := sampleBuildInput().toBuild()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Nature != types.Careful {
		t.Errorf("nature = %v, want Careful", b.Nature)
	}
	if !b.Species.Types.Has(types.Fire) || !b.Species.Types.Has(types.Dark) {
		t.Errorf("species types = %+v, want Fire/Dark", b.Species.Types)
	}
	if len(moves) != 2 {
		t.Fatalf("moves = %d, want 2", len(moves))
	}
	if moves[0].Priority != 3 {
		t.Errorf("Fake Out priority = %d, want 3", moves[0].Priority)
	}
	if b.EVs.SpDefense != 252 {
		t.Errorf("SpDefense EV = %d, want 252", b.EVs.SpDefense)
	}
}

func TestBuildInputToBuildRejectsUnknownNature(t *testing.T) {
	bi := sampleBuildInput()
	bi.Nature = "not-a-nature"
	if _, _, err := bi.toBuild(); err == nil {
		t.Fatal("expected an error for an unknown nature")
	}
}

func TestBuildInputToBuildRejectsUnknownType(t *testing.T) {
	bi := sampleBuildInput()
	bi.Species.Type1 = "not-a-type"
	if _, _, err := bi.toBuild(); err == nil {
		t.Fatal("expected an error for an unknown type")
	}
}

func TestBuildInputDefaultsToFullIVsWhenOmitted(t *testing.T) {
	b, _, err := sampleBuildInput().toBuild()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.IVs != types.DefaultIVs() {
		t.Errorf("IVs = %+v, want all-31 default", b.IVs)
	}
}

func TestMoveInputRejectsUnknownCategory(t *testing.T) {
	mi := moveInput{Name: "Bogus Move", Type: "normal", Category: "weird", BasePower: 50}
	if _, err := mi.toMove(); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestMoveInputStatusMoveHasNoBasePower(t *testing.T) {
	mi := moveInput{Name: "Protect", Type: "normal", Category: "status"}
	mv, err := mi.toMove()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.HasBasePower {
		t.Error("Protect should not report HasBasePower")
	}
	if mv.IsDamaging() {
		t.Error("Protect should not be damaging")
	}
}
