// Package showdown implements the Showdown-style text import/export
// codec spec.md section 6 documents: one Pokemon block per build, blank
// lines separating team members, round-tripping every field a Build
// carries. Export formatting follows the teacher's strings.Builder-based
// line-assembly style; import follows its tokenize-then-interpret-per-
// token parser style, both grounded on lib/cli_formatter.go and
// services/position_parser.go respectively.
package showdown

import (
	"fmt"
	"strings"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

// Export renders a single Build in Showdown's canonical text form.
func Export(b types.Build) string {
	var out strings.Builder

	fmt.Fprintf(&out, "%s", b.Species.Name)
	if b.Item != "" {
		fmt.Fprintf(&out, " @ %s", b.Item)
	}
	out.WriteString("\n")

	if b.Ability != "" {
		fmt.Fprintf(&out, "Ability: %s\n", b.Ability)
	}
	fmt.Fprintf(&out, "Level: %d\n", b.EffectiveLevel())
	if b.TeraActive {
		fmt.Fprintf(&out, "Tera Type: %s\n", b.TeraType)
	}

	out.WriteString("EVs: ")
	out.WriteString(formatSpread(b.EVs.HP, b.EVs.Attack, b.EVs.Defense, b.EVs.SpAttack, b.EVs.SpDefense, b.EVs.Speed))
	out.WriteString("\n")

	if !b.IVs.IsDefault() {
		out.WriteString("IVs: ")
		out.WriteString(formatSpread(b.IVs.HP, b.IVs.Attack, b.IVs.Defense, b.IVs.SpAttack, b.IVs.SpDefense, b.IVs.Speed))
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "%s Nature\n", b.Nature.String())

	for _, m := range b.Moves {
		fmt.Fprintf(&out, "- %s\n", m)
	}

	return out.String()
}

// ExportTeam renders a full team as Pokemon blocks separated by a blank
// line.
func ExportTeam(team []types.Build) string {
	blocks := make([]string, len(team))
	for i, b := range team {
		blocks[i] = Export(b)
	}
	return strings.Join(blocks, "\n")
}

// formatSpread renders the six-stat "N Stat / N Stat / ..." layout shared
// by the EVs and IVs lines, in HP/Atk/Def/SpA/SpD/Spe order, omitting any
// stat left at zero so the common "EVs: 252 Atk / 252 Spe" shorthand
// round-trips.
func formatSpread(hp, atk, def, spa, spd, spe int) string {
	labels := []struct {
		value int
		label string
	}{
		{hp, "HP"}, {atk, "Atk"}, {def, "Def"}, {spa, "SpA"}, {spd, "SpD"}, {spe, "Spe"},
	}

	parts := make([]string, 0, 6)
	for _, l := range labels {
		if l.value != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", l.value, l.label))
		}
	}
	if len(parts) == 0 {
		return "0 HP"
	}
	return strings.Join(parts, " / ")
}
