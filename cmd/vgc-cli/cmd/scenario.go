package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

// speciesInput, moveInput, and buildInput are JSON-friendly mirrors of the
// engine's types.Species/Move/Build, which intentionally carry no JSON
// tags of their own (the pure engine takes no opinion on serialization).
// The CLI is the one collaborator that needs a wire format, so it owns
// the conversion here rather than polluting the types package.
type speciesInput struct {
	Name            string `json:"name"`
	HP              int    `json:"hp"`
	Attack          int    `json:"attack"`
	Defense         int    `json:"defense"`
	SpAttack        int    `json:"sp_attack"`
	SpDefense       int    `json:"sp_defense"`
	Speed           int    `json:"speed"`
	Type1           string `json:"type1"`
	Type2           string `json:"type2,omitempty"`
	NotFullyEvolved bool   `json:"not_fully_evolved,omitempty"`
}

func (s speciesInput) toSpecies() (types.Species, error) {
	t1, ok := types.ParseType(s.Type1)
	if !ok {
		return types.Species{}, fmt.Errorf("species %q: unknown type1 %q", s.Name, s.Type1)
	}
	tl := types.NewTypeList(t1)
	if s.Type2 != "" {
		t2, ok := types.ParseType(s.Type2)
		if !ok {
			return types.Species{}, fmt.Errorf("species %q: unknown type2 %q", s.Name, s.Type2)
		}
		tl = types.NewDualTypeList(t1, t2)
	}
	return types.Species{
		Name:            s.Name,
		BaseStats:       types.BaseStats{HP: s.HP, Attack: s.Attack, Defense: s.Defense, SpAttack: s.SpAttack, SpDefense: s.SpDefense, Speed: s.Speed},
		Types:           tl,
		NotFullyEvolved: s.NotFullyEvolved,
	}, nil
}

type moveInput struct {
	Name                  string `json:"name"`
	Type                  string `json:"type"`
	Category              string `json:"category"`
	BasePower             int    `json:"base_power"`
	Priority              int    `json:"priority,omitempty"`
	MakesContact          bool   `json:"makes_contact,omitempty"`
	SecondaryEffectChance int    `json:"secondary_effect_chance,omitempty"`
	HealsUser             bool   `json:"heals_user,omitempty"`
}

func (m moveInput) toMove() (types.Move, error) {
	t, ok := types.ParseType(m.Type)
	if !ok {
		return types.Move{}, fmt.Errorf("move %q: unknown type %q", m.Name, m.Type)
	}
	cat, err := parseCategory(m.Category)
	if err != nil {
		return types.Move{}, fmt.Errorf("move %q: %w", m.Name, err)
	}
	return types.Move{
		Name:                  m.Name,
		Type:                  t,
		Category:              cat,
		BasePower:             m.BasePower,
		HasBasePower:          m.BasePower > 0,
		Priority:              m.Priority,
		MakesContact:          m.MakesContact,
		SecondaryEffectChance: m.SecondaryEffectChance,
		HealsUser:             m.HealsUser,
		Target:                types.TargetSingleAdjacent,
	}, nil
}

func parseCategory(s string) (types.MoveCategory, error) {
	switch s {
	case "physical", "Physical":
		return types.Physical, nil
	case "special", "Special":
		return types.Special, nil
	case "status", "Status":
		return types.Status, nil
	default:
		return 0, fmt.Errorf("unknown move category %q", s)
	}
}

type buildInput struct {
	Species    speciesInput `json:"species"`
	Nature     string       `json:"nature"`
	EVs        [6]int       `json:"evs"` // HP, Atk, Def, SpA, SpD, Spe
	IVs        [6]int       `json:"ivs,omitempty"`
	Level      int          `json:"level,omitempty"`
	Item       string       `json:"item,omitempty"`
	Ability    string       `json:"ability,omitempty"`
	TeraActive bool         `json:"tera_active,omitempty"`
	TeraType   string       `json:"tera_type,omitempty"`
	Moves      []moveInput  `json:"moves,omitempty"`
}

func (bi buildInput) toBuild() (types.Build, []types.Move, error) {
	species, err := bi.Species.toSpecies()
	if err != nil {
		return types.Build{}, nil, err
	}
	nature, ok := types.ParseNature(bi.Nature)
	if !ok {
		return types.Build{}, nil, fmt.Errorf("unknown nature %q", bi.Nature)
	}

	ivs := types.DefaultIVs()
	if bi.IVs != [6]int{} {
		ivs = types.IVSpread{HP: bi.IVs[0], Attack: bi.IVs[1], Defense: bi.IVs[2], SpAttack: bi.IVs[3], SpDefense: bi.IVs[4], Speed: bi.IVs[5]}
	}

	b := types.Build{
		Species: species,
		Nature:  nature,
		EVs:     types.EVSpread{HP: bi.EVs[0], Attack: bi.EVs[1], Defense: bi.EVs[2], SpAttack: bi.EVs[3], SpDefense: bi.EVs[4], Speed: bi.EVs[5]},
		IVs:     ivs,
		Level:   bi.Level,
		Item:    bi.Item,
		Ability: bi.Ability,
	}

	if bi.TeraActive {
		tera, ok := types.ParseType(bi.TeraType)
		if !ok {
			return types.Build{}, nil, fmt.Errorf("unknown tera_type %q", bi.TeraType)
		}
		b.TeraActive = true
		b.TeraType = tera
	}

	moves := make([]types.Move, 0, len(bi.Moves))
	for _, mi := range bi.Moves {
		mv, err := mi.toMove()
		if err != nil {
			return types.Build{}, nil, err
		}
		moves = append(moves, mv)
		b.Moves = append(b.Moves, mv.Name)
	}

	return b, moves, nil
}

// readJSONFile decodes path into dest, used by every subcommand that
// accepts a --file scenario argument.
func readJSONFile(path string, dest any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(dest); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// decodeJSONInput decodes path into dest, reading stdin when path is
// empty.
func decodeJSONInput(path string, dest any) error {
	if path == "" {
		if err := json.NewDecoder(os.Stdin).Decode(dest); err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
		return nil
	}
	return readJSONFile(path, dest)
}
