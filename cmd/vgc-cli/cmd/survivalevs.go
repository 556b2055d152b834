package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MSS23/vgc-mcp-sub003/search"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

var survivalFile string

// survivalScenario describes one or two incoming attacks a defender must
// survive; Attack2 is optional and switches the command from a
// single-stat search to the dual HP+Def+SpD search.
type survivalScenario struct {
	Attack1         attackInput  `json:"attack1"`
	Attack2         *attackInput `json:"attack2,omitempty"`
	DefenderSpecies speciesInput `json:"defender_species"`
	Nature          string       `json:"nature"`
	Level           int          `json:"level,omitempty"`
	TargetPercent   float64      `json:"target_percent"`
}

type attackInput struct {
	Move     moveInput           `json:"move"`
	Attacker buildInput          `json:"attacker"`
	Context  modifierContextJSON `json:"context,omitempty"`
}

func (a attackInput) toSurvivalAttack() (search.SurvivalAttack, error) {
	attacker, _, err := a.Attacker.toBuild()
	if err != nil {
		return search.SurvivalAttack{}, fmt.Errorf("attacker: %w", err)
	}
	move, err := a.Move.toMove()
	if err != nil {
		return search.SurvivalAttack{}, fmt.Errorf("move: %w", err)
	}
	return search.SurvivalAttack{Move: move, Attacker: attacker, Ctx: a.Context.toContext()}, nil
}

var survivalEVsCmd = &cobra.Command{
	Use:   "survival-evs",
	Short: "Find minimum EV investment surviving one or two incoming attacks",
	RunE:  runSurvivalEVs,
}

func init() {
	survivalEVsCmd.Flags().StringVarP(&survivalFile, "file", "f", "", "path to a JSON survival scenario (required)")
	survivalEVsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(survivalEVsCmd)
}

func runSurvivalEVs(c *cobra.Command, args []string) error {
	var scenario survivalScenario
	if err := readJSONFile(survivalFile, &scenario); err != nil {
		return err
	}

	species, err := scenario.DefenderSpecies.toSpecies()
	if err != nil {
		return fmt.Errorf("defender_species: %w", err)
	}
	nature, ok := types.ParseNature(scenario.Nature)
	if !ok {
		return fmt.Errorf("unknown nature %q", scenario.Nature)
	}
	level := scenario.Level
	if level <= 0 {
		level = 50
	}

	attack1, err := scenario.Attack1.toSurvivalAttack()
	if err != nil {
		return fmt.Errorf("attack1: %w", err)
	}

	f := NewOutputFormatter()

	if scenario.Attack2 == nil {
		evs, found := search.SingleSurvivalBenchmark(attack1, species, nature, level, scenario.TargetPercent)
		result := struct {
			EVs   types.EVSpread `json:"evs"`
			Found bool           `json:"found"`
		}{evs, found}
		return f.Print(result, func() string {
			if !found {
				return "No EV investment within the 508 budget survives this attack at the requested rate"
			}
			return fmt.Sprintf("HP %d / Def %d / SpD %d / SpA %d / Atk %d / Spe %d survives %s",
				evs.HP, evs.Defense, evs.SpDefense, evs.SpAttack, evs.Attack, evs.Speed, scenario.Attack1.Move.Name)
		})
	}

	attack2, err := scenario.Attack2.toSurvivalAttack()
	if err != nil {
		return fmt.Errorf("attack2: %w", err)
	}
	result := search.SurviveDual(attack1, attack2, species, nature, level, scenario.TargetPercent)
	return f.Print(result, func() string {
		if result.Feasible {
			return fmt.Sprintf("HP %d / Def %d / SpD %d survives both attacks (total %d EVs)",
				result.EVs.HP, result.EVs.Defense, result.EVs.SpDefense, result.EVs.Total())
		}
		return fmt.Sprintf("No feasible triple within budget; best-effort HP %d leaves margins %.1f%% / %.1f%%",
			result.EVs.HP, result.MarginOne, result.MarginTwo)
	})
}
