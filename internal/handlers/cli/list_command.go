package cli

import (
	"fmt"
	"strings"

	"github.com/lightyen/ts-paths-resolve-plugin/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the compiled path aliases.",
		Long: `Displays the mappings compiled from compilerOptions.paths in match order,
followed by the patterns and targets that were discarded as invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, sess)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	sess *session,
) error {
	out := cmd.OutOrStdout()
	inspection := sess.services.Inspection
	mappings := inspection.Mappings()
	discarded := inspection.Discarded()

	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Config: %s", inspection.Project().ConfigPath)))

	if len(mappings) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No path aliases are configured."))
	} else {
		fmt.Fprintln(out, ui.HeaderColor("Path Aliases:"))

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Pattern", "Targets"})
		table.SetBorder(true)
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

		for _, m := range mappings {
			table.Append([]string{m.Alias.Raw, strings.Join(m.Targets, ", ")})
		}
		table.Render()
	}

	if len(discarded) == 0 {
		return nil
	}

	fmt.Fprintln(out, ui.WarningColor("Discarded:"))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Pattern", "Target", "Reason"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, d := range discarded {
		target := d.Target
		if target == "" {
			target = "-"
		}
		table.Append([]string{d.Pattern, target, d.Reason})
	}
	table.Render()
	return nil
}
