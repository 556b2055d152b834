package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MSS23/vgc-mcp-sub003/damage"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

var damageFile string

// damageScenario is the --file input shape for the damage subcommand: an
// attacker/move pair, a defender, and the modifier toggles that are
// otherwise impossible to express on the command line.
type damageScenario struct {
	Attacker buildInput          `json:"attacker"`
	Move     moveInput           `json:"move"`
	Defender buildInput          `json:"defender"`
	Context  modifierContextJSON `json:"context"`
}

type modifierContextJSON struct {
	IsDoubles       bool `json:"is_doubles,omitempty"`
	MultipleTargets bool `json:"multiple_targets,omitempty"`
	IsCritical      bool `json:"is_critical,omitempty"`

	AttackerItem    string `json:"attacker_item,omitempty"`
	DefenderItem    string `json:"defender_item,omitempty"`
	AttackerAbility string `json:"attacker_ability,omitempty"`
	DefenderAbility string `json:"defender_ability,omitempty"`

	ReflectUp     bool `json:"reflect_up,omitempty"`
	LightScreenUp bool `json:"light_screen_up,omitempty"`
	AuroraVeilUp  bool `json:"aurora_veil_up,omitempty"`
	HelpingHand   bool `json:"helping_hand,omitempty"`
}

func (c modifierContextJSON) toContext() types.ModifierContext {
	return types.ModifierContext{
		IsDoubles:       c.IsDoubles,
		MultipleTargets: c.MultipleTargets,
		IsCritical:      c.IsCritical,
		AttackerItem:    c.AttackerItem,
		DefenderItem:    c.DefenderItem,
		AttackerAbility: c.AttackerAbility,
		DefenderAbility: c.DefenderAbility,
		ReflectUp:       c.ReflectUp,
		LightScreenUp:   c.LightScreenUp,
		AuroraVeilUp:    c.AuroraVeilUp,
		HelpingHand:     c.HelpingHand,
	}
}

var damageCmd = &cobra.Command{
	Use:   "damage",
	Short: "Compute a damage roll, KO classification, and modifier audit trail",
	Long: `Reads a JSON scenario describing an attacker, its move, a defender, and
any active field/battle modifiers, then prints the resulting damage range,
percent range, and KO classification.`,
	RunE: runDamage,
}

func init() {
	damageCmd.Flags().StringVarP(&damageFile, "file", "f", "", "path to a JSON damage scenario (required)")
	damageCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(damageCmd)
}

func runDamage(c *cobra.Command, args []string) error {
	var scenario damageScenario
	if err := readJSONFile(damageFile, &scenario); err != nil {
		return err
	}

	attacker, _, err := scenario.Attacker.toBuild()
	if err != nil {
		return fmt.Errorf("attacker: %w", err)
	}
	defender, _, err := scenario.Defender.toBuild()
	if err != nil {
		return fmt.Errorf("defender: %w", err)
	}
	move, err := scenario.Move.toMove()
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}

	result := damage.Calculate(move, attacker, defender, scenario.Context.toContext())

	f := NewOutputFormatter()
	return f.Print(result, func() string {
		return FormatDamageResult(move.Name, result, f.Verbose)
	})
}
