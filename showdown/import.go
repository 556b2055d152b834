package showdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

// Import parses a single Showdown-format Pokemon block into a Build plus
// the raw move list, tokenizing line-by-line and interpreting each line's
// leading keyword the way the teacher's position parser dispatches on
// a leading prefix before delegating to a per-format helper.
func Import(block string) (types.Build, error) {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return types.Build{}, fmt.Errorf("empty Pokemon block")
	}

	b := types.Build{IVs: types.DefaultIVs()}

	species, item, err := parseHeaderLine(lines[0])
	if err != nil {
		return types.Build{}, err
	}
	b.Species.Name = species
	b.Item = item

	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, "Ability:"):
			b.Ability = strings.TrimSpace(strings.TrimPrefix(line, "Ability:"))
		case strings.HasPrefix(line, "Level:"):
			level, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Level:")))
			if err != nil {
				return types.Build{}, fmt.Errorf("invalid Level line %q: %w", line, err)
			}
			b.Level = level
		case strings.HasPrefix(line, "Tera Type:"):
			teraName := strings.TrimSpace(strings.TrimPrefix(line, "Tera Type:"))
			tera, ok := types.ParseType(teraName)
			if !ok {
				return types.Build{}, fmt.Errorf("unknown Tera Type %q", teraName)
			}
			b.TeraActive = true
			b.TeraType = tera
		case strings.HasPrefix(line, "EVs:"):
			spread, err := parseSpread(strings.TrimPrefix(line, "EVs:"))
			if err != nil {
				return types.Build{}, fmt.Errorf("invalid EVs line: %w", err)
			}
			b.EVs = types.EVSpread{HP: spread[types.HP], Attack: spread[types.Attack], Defense: spread[types.Defense], SpAttack: spread[types.SpAttack], SpDefense: spread[types.SpDefense], Speed: spread[types.Speed]}
		case strings.HasPrefix(line, "IVs:"):
			spread, err := parseSpread(strings.TrimPrefix(line, "IVs:"))
			if err != nil {
				return types.Build{}, fmt.Errorf("invalid IVs line: %w", err)
			}
			b.IVs = types.IVSpread{HP: spread[types.HP], Attack: spread[types.Attack], Defense: spread[types.Defense], SpAttack: spread[types.SpAttack], SpDefense: spread[types.SpDefense], Speed: spread[types.Speed]}
		case strings.HasSuffix(line, "Nature"):
			natureName := strings.TrimSpace(strings.TrimSuffix(line, "Nature"))
			nature, ok := types.ParseNature(natureName)
			if !ok {
				return types.Build{}, fmt.Errorf("unknown nature %q", natureName)
			}
			b.Nature = nature
		case strings.HasPrefix(line, "-"):
			move := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			b.Moves = append(b.Moves, move)
		default:
			return types.Build{}, fmt.Errorf("unrecognized line %q", line)
		}
	}

	return b, nil
}

// ImportTeam parses a full multi-Pokemon export, splitting on blank
// lines.
func ImportTeam(text string) ([]types.Build, error) {
	blocks := splitBlocks(text)
	team := make([]types.Build, 0, len(blocks))
	for _, block := range blocks {
		b, err := Import(block)
		if err != nil {
			return nil, err
		}
		team = append(team, b)
	}
	return team, nil
}

func nonEmptyLines(block string) []string {
	raw := strings.Split(block, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func splitBlocks(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	out := make([]string, 0, len(raw))
	for _, block := range raw {
		if strings.TrimSpace(block) != "" {
			out = append(out, block)
		}
	}
	return out
}

// parseHeaderLine parses "<Species> @ <Item>" or bare "<Species>".
func parseHeaderLine(line string) (species, item string, err error) {
	if idx := strings.Index(line, "@"); idx != -1 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), nil
	}
	species = strings.TrimSpace(line)
	if species == "" {
		return "", "", fmt.Errorf("missing species name")
	}
	return species, "", nil
}

// parseSpread parses the "N Stat / N Stat / ..." layout into a
// stat-keyed map, defaulting any stat not mentioned to 0.
func parseSpread(raw string) (map[types.Stat]int, error) {
	result := map[types.Stat]int{types.HP: 0, types.Attack: 0, types.Defense: 0, types.SpAttack: 0, types.SpDefense: 0, types.Speed: 0}

	for _, part := range strings.Split(raw, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed spread entry %q", part)
		}
		value, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid spread value in %q: %w", part, err)
		}
		stat, ok := statAbbrev(fields[1])
		if !ok {
			return nil, fmt.Errorf("unknown stat abbreviation %q", fields[1])
		}
		result[stat] = value
	}
	return result, nil
}

func statAbbrev(abbrev string) (types.Stat, bool) {
	switch abbrev {
	case "HP":
		return types.HP, true
	case "Atk":
		return types.Attack, true
	case "Def":
		return types.Defense, true
	case "SpA":
		return types.SpAttack, true
	case "SpD":
		return types.SpDefense, true
	case "Spe":
		return types.Speed, true
	default:
		return 0, false
	}
}
