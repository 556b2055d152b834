package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MSS23/vgc-mcp-sub003/showdown"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

var (
	showdownInFile  string
	showdownOutFile string
)

var showdownCmd = &cobra.Command{
	Use:   "showdown",
	Short: "Convert teams between Showdown export text and JSON",
}

var showdownImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse Showdown export text into build JSON",
	RunE:  runShowdownImport,
}

var showdownExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render build JSON as Showdown export text",
	RunE:  runShowdownExport,
}

func init() {
	showdownImportCmd.Flags().StringVarP(&showdownInFile, "file", "f", "", "Showdown export text file (default: stdin)")
	showdownExportCmd.Flags().StringVarP(&showdownOutFile, "file", "f", "", "build JSON file (default: stdin)")

	showdownCmd.AddCommand(showdownImportCmd, showdownExportCmd)
	rootCmd.AddCommand(showdownCmd)
}

func runShowdownImport(c *cobra.Command, args []string) error {
	text, err := readInput(showdownInFile)
	if err != nil {
		return err
	}

	team, err := showdown.ImportTeam(text)
	if err != nil {
		return err
	}

	f := NewOutputFormatter()
	return f.Print(team, func() string {
		var out string
		for _, b := range team {
			out += fmt.Sprintf("%s: %d moves, %s nature, item %s\n", b.Species.Name, len(b.Moves), b.Nature.String(), b.Item)
		}
		return out
	})
}

func runShowdownExport(c *cobra.Command, args []string) error {
	var tf teamFile
	if err := decodeJSONInput(showdownOutFile, &tf); err != nil {
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

	fmt.Println(showdown.ExportTeam(team))
	return nil
}

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", path, err)
		}
		defer file.Close()
		r = file
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(raw), nil
}
