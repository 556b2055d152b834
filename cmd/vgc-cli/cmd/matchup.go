package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MSS23/vgc-mcp-sub003/damage"
	"github.com/MSS23/vgc-mcp-sub003/matchup"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

var (
	matchupYourFile  string
	matchupTheirFile string
	matchupTrickRoom bool
)

// teamMemberInput is one JSON team-file entry: a build plus the moveset
// with full combat data (power, type, priority) and the lead-heuristic
// flags, since the plain Showdown export format carries move names only.
type teamMemberInput struct {
	Build            buildInput  `json:"build"`
	Moves            []moveInput `json:"moves"`
	HasFakeOut       bool        `json:"has_fake_out,omitempty"`
	HasSetupPriority bool        `json:"has_setup_priority,omitempty"`
	HasIntimidate    bool        `json:"has_intimidate,omitempty"`
}

func (m teamMemberInput) toProfile() (matchup.Profile, error) {
	build, _, err := m.Build.toBuild()
	if err != nil {
		return matchup.Profile{}, err
	}
	moves := make([]types.Move, 0, len(m.Moves))
	for _, mi := range m.Moves {
		mv, err := mi.toMove()
		if err != nil {
			return matchup.Profile{}, err
		}
		moves = append(moves, mv)
	}
	return matchup.Profile{
		Build:            build,
		Moves:            moves,
		Ability:          damage.AbilityTagOf(build.Ability),
		Item:             damage.ItemTagOf(build.Item),
		HasFakeOut:       m.HasFakeOut,
		HasSetupPriority: m.HasSetupPriority,
		HasIntimidate:    m.HasIntimidate,
	}, nil
}

type teamFile struct {
	Members []teamMemberInput `json:"members"`
}

func (tf teamFile) toProfiles() ([6]types.Build, [6]matchup.Profile, []string, error) {
	var profiles [6]matchup.Profile
	var builds [6]types.Build
	names := make([]string, 6)
	for i := 0; i < 6 && i < len(tf.Members); i++ {
		p, err := tf.Members[i].toProfile()
		if err != nil {
			return builds, profiles, names, fmt.Errorf("member %d: %w", i, err)
		}
		profiles[i] = p
		builds[i] = p.Build
		names[i] = p.Build.Species.Name
	}
	return builds, profiles, names, nil
}

var matchupCmd = &cobra.Command{
	Use:   "matchup",
	Short: "Build a full team-vs-team matchup game plan",
	Long: `Reads two six-member team files (JSON) and prints the scoring matrix,
ranked threats, lead pairs scored against the predicted opponent lead,
turn-1 priority order, and win condition. The --json output also carries
the bring-four recommendation; the predicted opponent lead itself is not
printed.`,
	RunE: runMatchup,
}

func init() {
	matchupCmd.Flags().StringVar(&matchupYourFile, "team", "", "path to your team JSON file (required)")
	matchupCmd.Flags().StringVar(&matchupTheirFile, "opponent", "", "path to the opponent team JSON file (required)")
	matchupCmd.Flags().BoolVar(&matchupTrickRoom, "trick-room", false, "project turn 1 under an active Trick Room")
	matchupCmd.MarkFlagRequired("team")
	matchupCmd.MarkFlagRequired("opponent")
	rootCmd.AddCommand(matchupCmd)
}

func runMatchup(c *cobra.Command, args []string) error {
	var yourFile, theirFile teamFile
	if err := readJSONFile(matchupYourFile, &yourFile); err != nil {
		return err
	}
	if err := readJSONFile(matchupTheirFile, &theirFile); err != nil {
		return err
	}

	_, yourArr, yourNames, err := yourFile.toProfiles()
	if err != nil {
		return fmt.Errorf("team: %w", err)
	}
	_, theirArr, theirNames, err := theirFile.toProfiles()
	if err != nil {
		return fmt.Errorf("opponent: %w", err)
	}

	plan := matchup.BuildGamePlan(yourArr, theirArr, matchupTrickRoom)

	var yourNameArr, theirNameArr [6]string
	copy(yourNameArr[:], yourNames)
	copy(theirNameArr[:], theirNames)

	f := NewOutputFormatter()
	return f.Print(plan, func() string {
		return plan.RenderMarkdown(yourNameArr, theirNameArr)
	})
}
