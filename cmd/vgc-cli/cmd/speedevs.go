package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MSS23/vgc-mcp-sub003/search"
	"github.com/MSS23/vgc-mcp-sub003/stats"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

var (
	speedBase   int
	speedIV     int
	speedLevel  int
	speedNature string
	speedTarget int
)

var speedEVsCmd = &cobra.Command{
	Use:   "speed-evs",
	Short: "Find the minimum Speed EV breakpoint reaching a target stat",
	RunE:  runSpeedEVs,
}

func init() {
	speedEVsCmd.Flags().IntVar(&speedBase, "base", 0, "base Speed stat (required)")
	speedEVsCmd.Flags().IntVar(&speedIV, "iv", types.MaxIV, "Speed IV")
	speedEVsCmd.Flags().IntVar(&speedLevel, "level", 50, "level")
	speedEVsCmd.Flags().StringVar(&speedNature, "nature", "hardy", "nature name")
	speedEVsCmd.Flags().IntVar(&speedTarget, "target", 0, "target Speed stat (required)")
	speedEVsCmd.MarkFlagRequired("base")
	speedEVsCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(speedEVsCmd)
}

func runSpeedEVs(c *cobra.Command, args []string) error {
	nature, ok := types.ParseNature(speedNature)
	if !ok {
		return fmt.Errorf("unknown nature %q", speedNature)
	}

	evs, found := search.SpeedBenchmark(speedBase, speedIV, speedLevel, nature, speedTarget)

	result := struct {
		EVs         int  `json:"evs"`
		Found       bool `json:"found"`
		AchievedSpd int  `json:"achieved_speed"`
	}{EVs: evs, Found: found}
	if found {
		result.AchievedSpd = stats.OtherStat(speedBase, speedIV, evs, speedLevel, nature.MultiplierTenths(types.Speed))
	}

	f := NewOutputFormatter()
	return f.Print(result, func() string {
		if !found {
			return fmt.Sprintf("No EV investment up to %d reaches Speed %d", types.MaxEV, speedTarget)
		}
		return fmt.Sprintf("%d Speed EVs -> %d Speed (target %d)", evs, result.AchievedSpd, speedTarget)
	})
}
