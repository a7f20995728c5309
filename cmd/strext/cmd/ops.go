package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/msto63/strext/internal/pipeline"
	"github.com/msto63/strext/utils/stringx"
)

var opsNamesOnly bool

var (
	opsHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	opsNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	opsMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var opsCmd = &cobra.Command{
	Use:     "ops",
	Aliases: []string{"operations", "list"},
	Short:   "List the available operations",
	Long: `Lists every operation with its parameters and description.
Parameters in <> are required, parameters in [] are optional.`,
	Args: cobra.NoArgs,
	RunE: runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)

	opsCmd.Flags().BoolVar(&opsNamesOnly, "names", false, "Print operation names only")
}

func runOps(cmd *cobra.Command, args []string) error {
	reg := pipeline.DefaultRegistry()
	out := cmd.OutOrStdout()

	if opsNamesOnly {
		for _, name := range reg.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	writeOpsTable(out, reg)
	return nil
}

func writeOpsTable(out io.Writer, reg *pipeline.Registry) {
	defs := reg.Definitions()

	rows := make([][3]string, 0, len(defs))
	for _, def := range defs {
		params := make([]string, len(def.Params))
		for i, p := range def.Params {
			params[i] = p.Usage()
		}
		rows = append(rows, [3]string{def.Name, strings.Join(params, " "), def.Description})
	}

	header := [3]string{"OPERATION", "PARAMETERS", "DESCRIPTION"}
	widths := [2]int{runewidth.StringWidth(header[0]), runewidth.StringWidth(header[1])}
	for _, row := range rows {
		for i := range widths {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	fmt.Fprintln(out, opsHeaderStyle.Render(
		stringx.FixedDisplayWidth(header[0], widths[0])+"  "+
			stringx.FixedDisplayWidth(header[1], widths[1])+"  "+header[2]))

	for _, row := range rows {
		fmt.Fprintln(out,
			opsNameStyle.Render(stringx.FixedDisplayWidth(row[0], widths[0]))+"  "+
				opsMutedStyle.Render(stringx.FixedDisplayWidth(row[1], widths[1]))+"  "+
				row[2])
	}

	aliases := reg.Aliases()
	if len(aliases) == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, opsHeaderStyle.Render("ALIASES"))
	for _, def := range defs {
		if names := reg.AliasesOf(def.Name); len(names) > 0 {
			fmt.Fprintf(out, "  %s -> %s\n", strings.Join(names, ", "), opsNameStyle.Render(def.Name))
		}
	}
}

// completeOps completes the operation name of apply
func completeOps(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 && args[len(args)-1] != chainSeparator {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, name := range pipeline.DefaultRegistry().Names() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
