package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MSS23/vgc-mcp-sub003/stats"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

var statsFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute all six final stats for a build",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "", "path to a JSON build (required)")
	statsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(statsCmd)
}

func runStats(c *cobra.Command, args []string) error {
	var bi buildInput
	if err := readJSONFile(statsFile, &bi); err != nil {
		return err
	}
	build, _, err := bi.toBuild()
	if err != nil {
		return err
	}

	level := build.EffectiveLevel()
	final := stats.AllStats(build.Species.BaseStats, build.IVs, build.EVs, level, build.Nature)

	f := NewOutputFormatter()
	return f.Print(final, func() string {
		return fmt.Sprintf(
			"%s (Lv.%d, %s)\n  HP:  %d\n  Atk: %d\n  Def: %d\n  SpA: %d\n  SpD: %d\n  Spe: %d",
			build.Species.Name, level, build.Nature.String(),
			final.HP, final.Attack, final.Defense, final.SpAttack, final.SpDefense, final.Speed,
		)
	})
}
