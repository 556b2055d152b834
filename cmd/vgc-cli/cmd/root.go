// Package cmd implements the vgc-cli command-line front end over the
// engine's pure-logic packages: damage, stats, search, matchup, ruleset,
// and showdown, each as a cobra subcommand binding global flags through
// viper, shaped after the teacher's cmd/cli/cmd/root.go.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joho/godotenv"

	"github.com/MSS23/vgc-mcp-sub003/vgclog"
)

var (
	cfgFile     string
	regulation  string
	jsonOut     bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:          "vgc-cli",
	Short:        "Command-line interface for the VGC battle-mechanics engine",
	SilenceUsage: true,
	Long: `vgc-cli computes Gen-9 VGC battle mechanics: damage rolls and KO odds,
stat calculations, EV-optimization benchmarks, team matchup reports,
regulation legality checks, and Showdown text import/export.

Examples:
  vgc-cli damage --file scenario.json
  vgc-cli speed-evs --base 142 --nature jolly --target 200
  vgc-cli matchup --team team.json --opponent opponent.json
  vgc-cli ruleset --team team.json --catalog regulations.json --regulation reg-h

Global Flags:
  --config string        config file (default is $HOME/.vgc-cli.yaml)
  --regulation string    regulation code to evaluate against (env: VGC_REGULATION)
  --json                 output in JSON format
  --verbose               show detailed diagnostics`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(vgclog.Initialize, initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vgc-cli.yaml)")
	rootCmd.PersistentFlags().StringVar(&regulation, "regulation", "", "regulation code (env: VGC_REGULATION)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "show detailed diagnostics")

	viper.BindPFlag("regulation", rootCmd.PersistentFlags().Lookup("regulation"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig loads an optional .env file, then the viper config file and
// VGC_-prefixed environment variables, mirroring the teacher's initConfig.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".vgc-cli")
		}
	}

	viper.SetEnvPrefix("VGC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		vgclog.Debug("loaded CLI config file", "path", viper.ConfigFileUsed())
		if isVerbose() {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func isJSONOutput() bool { return viper.GetBool("json") }
func isVerbose() bool    { return viper.GetBool("verbose") }

func currentRegulation() string {
	if rootCmd.PersistentFlags().Changed("regulation") {
		return regulation
	}
	return viper.GetString("regulation")
}
