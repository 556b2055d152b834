package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/MSS23/vgc-mcp-sub003/types"
)

// OutputFormatter renders a command's result as either colorized text or
// JSON, mirroring the teacher's OutputFormatter: a single struct read from
// global flags at construction time, with one Print* method per mode.
type OutputFormatter struct {
	JSON    bool
	Verbose bool
}

// NewOutputFormatter builds a formatter from the currently bound global
// flags.
func NewOutputFormatter() *OutputFormatter {
	return &OutputFormatter{JSON: isJSONOutput(), Verbose: isVerbose()}
}

// Print writes payload as JSON when JSON mode is active, otherwise calls
// textFn to render the human-readable report.
func (f *OutputFormatter) Print(payload any, textFn func() string) error {
	if f.JSON {
		return f.PrintJSON(payload)
	}
	fmt.Println(textFn())
	return nil
}

// PrintJSON marshals payload with indentation and writes it to stdout.
func (f *OutputFormatter) PrintJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
	dangerColor  = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	auditColor   = color.New(color.FgHiBlack)
	neutralColor = color.New(color.FgWhite)
)

// FormatDamageResult renders a DamageResult as a colorized text report:
// roll range, percent range, KO classification (color-coded by severity),
// and, in verbose mode, the full modifier audit trail.
func FormatDamageResult(moveName string, result types.DamageResult, verbose bool) string {
	var b strings.Builder

	fmt.Fprintln(&b, headingColor.Sprintf("Damage: %s", moveName))
	if result.IsStatus {
		fmt.Fprintln(&b, neutralColor.Sprint("  status move, no direct damage"))
		return b.String()
	}

	fmt.Fprintf(&b, "  Rolls:   %d - %d\n", result.MinDamage, result.MaxDamage)
	fmt.Fprintf(&b, "  Percent: %.1f%% - %.1f%%\n", result.MinPercent(), result.MaxPercent())
	fmt.Fprintf(&b, "  KO:      %s\n", koColorFor(result.KO).Sprint(result.KO.String()))

	if verbose && len(result.Audit) > 0 {
		fmt.Fprintln(&b, auditColor.Sprint("  Modifier trail:"))
		for _, step := range result.Audit {
			fmt.Fprintln(&b, auditColor.Sprintf("    - %s: %s", step.Name, step.Description))
		}
	}

	return b.String()
}

func koColorFor(k types.KOClass) *color.Color {
	switch k {
	case types.GuaranteedOHKO, types.Guaranteed2HKO:
		return dangerColor
	case types.PossibleOHKO, types.Possible2HKO, types.Guaranteed3HKO:
		return warnColor
	case types.NoKO:
		return successColor
	default:
		return neutralColor
	}
}

// dryrunPrefix mirrors the teacher's [DRYRUN] line prefix. No subcommand
// currently has a --dry-run mode, so nothing calls it.
func dryrunPrefix(dryrun bool, text string) string {
	if !dryrun {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "[DRYRUN] " + l
	}
	return strings.Join(lines, "\n")
}
