package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MSS23/vgc-mcp-sub003/config"
	"github.com/MSS23/vgc-mcp-sub003/ruleset"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

var (
	rulesetTeamFile    string
	rulesetCatalogFile string
)

var rulesetCmd = &cobra.Command{
	Use:   "ruleset",
	Short: "Check a team's legality against a regulation catalog",
	Long: `Reads a regulation catalog JSON file and a team JSON file, then reports
every species-clause, restricted-count, banned-list, item-clause, and
team-size violation against the --regulation code (or the catalog's
current regulation if omitted).`,
	RunE: runRuleset,
}

func init() {
	rulesetCmd.Flags().StringVar(&rulesetTeamFile, "team", "", "path to a team JSON file (required)")
	rulesetCmd.Flags().StringVar(&rulesetCatalogFile, "catalog", "", "path to a regulation catalog JSON file (required)")
	rulesetCmd.MarkFlagRequired("team")
	rulesetCmd.MarkFlagRequired("catalog")
	rootCmd.AddCommand(rulesetCmd)
}

func runRuleset(c *cobra.Command, args []string) error {
	catalog, err := config.LoadFromFile(config.LoadOptions{CatalogPath: rulesetCatalogFile, EnvPrefix: "VGC"})
	if err != nil {
		return err
	}

	regCode := currentRegulation()
	if regCode == "" {
		regCode = catalog.CurrentRegulation
	}

	v, err := ruleset.NewValidator(catalog, regCode)
	if err != nil {
		return err
	}

	var tf teamFile
	if err := readJSONFile(rulesetTeamFile, &tf); err != nil {
		return err
	}

	team := make([]types.Build, 0, len(tf.Members))
	for i, m := range tf.Members {
		build, _, err := m.Build.toBuild()
		if err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
		team = append(team, build)
	}

	violations := v.Validate(team)

	f := NewOutputFormatter()
	return f.Print(violations, func() string {
		if len(violations) == 0 {
			return successColor.Sprintf("Team is legal under regulation %q", regCode)
		}
		text := dangerColor.Sprintf("Team is ILLEGAL under regulation %q:\n", regCode)
		for _, violation := range violations {
			text += fmt.Sprintf("  [%s] %s\n", violation.Rule, violation.Message)
		}
		return text
	})
}
