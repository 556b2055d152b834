package damage

import (
	"strings"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

var groundShakingMoves = map[string]bool{
	"earthquake": true,
	"bulldoze":   true,
	"magnitude":  true,
}

// applyPreRandomMultipliers implements Phase F: spread, weather, terrain,
// and critical multipliers, each floored after application (spec.md 4.3).
func applyPreRandomMultipliers(value int, move types.Move, ctx types.ModifierContext) (int, []types.ModifierStep) {
	var audit []types.ModifierStep

	if ctx.IsDoubles && ctx.MultipleTargets && move.Target.IsSpread() {
		value = apply(value, fx0_75)
		audit = append(audit, types.ModifierStep{Name: "spread", Description: "0.75x spread move in doubles"})
	}

	switch ctx.Weather {
	case types.Sun, types.HarshSun:
		if move.Type == types.Fire {
			value = apply(value, fx1_5)
			audit = append(audit, types.ModifierStep{Name: "weather-sun-fire", Description: "1.5x Fire move in sun"})
		} else if move.Type == types.Water {
			if ctx.Weather == types.HarshSun {
				value = 0
				audit = append(audit, types.ModifierStep{Name: "weather-harsh-sun-water", Description: "Water move nullified by Harsh Sunlight"})
			} else {
				value = apply(value, fx0_5)
				audit = append(audit, types.ModifierStep{Name: "weather-sun-water", Description: "0.5x Water move in sun"})
			}
		}
	case types.Rain, types.HeavyRain:
		if move.Type == types.Water {
			value = apply(value, fx1_5)
			audit = append(audit, types.ModifierStep{Name: "weather-rain-water", Description: "1.5x Water move in rain"})
		} else if move.Type == types.Fire {
			if ctx.Weather == types.HeavyRain {
				value = 0
				audit = append(audit, types.ModifierStep{Name: "weather-heavy-rain-fire", Description: "Fire move nullified by Heavy Rain"})
			} else {
				value = apply(value, fx0_5)
				audit = append(audit, types.ModifierStep{Name: "weather-rain-fire", Description: "0.5x Fire move in rain"})
			}
		}
	}

	switch ctx.Terrain {
	case types.TerrainElectric:
		if ctx.AttackerGrounded && move.Type == types.Electric {
			value = apply(value, fx1_3)
			audit = append(audit, types.ModifierStep{Name: "terrain-electric", Description: "1.3x grounded Electric move"})
		}
	case types.TerrainGrassy:
		if ctx.AttackerGrounded && move.Type == types.Grass {
			value = apply(value, fx1_3)
			audit = append(audit, types.ModifierStep{Name: "terrain-grassy-boost", Description: "1.3x grounded Grass move"})
		}
		if ctx.DefenderGrounded && groundShakingMoves[strings.ToLower(move.Name)] {
			value = apply(value, fx0_5)
			audit = append(audit, types.ModifierStep{Name: "terrain-grassy-ground-move", Description: "0.5x ground-shaking move vs grounded defender"})
		}
	case types.TerrainPsychic:
		if ctx.AttackerGrounded && move.Type == types.Psychic {
			value = apply(value, fx1_3)
			audit = append(audit, types.ModifierStep{Name: "terrain-psychic", Description: "1.3x grounded Psychic move"})
		}
	case types.TerrainMisty:
		if ctx.DefenderGrounded && move.Type == types.Dragon {
			value = apply(value, fx0_5)
			audit = append(audit, types.ModifierStep{Name: "terrain-misty", Description: "0.5x Dragon move vs grounded defender"})
		}
	}

	if ctx.IsCritical {
		value = apply(value, fx1_5)
		audit = append(audit, types.ModifierStep{Name: "critical", Description: "1.5x critical hit"})
	}

	return value, audit
}
