package cli

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/padlint/padlint/internal/rules"
)

// rulesCmd lists the registered rule tables.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List registered padding rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var buf bytes.Buffer

			table := tablewriter.NewWriter(&buf)
			table.SetHeader([]string{"Rule", "Entries", "Description"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT,
				tablewriter.ALIGN_CENTER,
				tablewriter.ALIGN_LEFT,
			})

			all := rules.All()
			for _, e := range all {
				desc := e.Description
				if e.Deprecated {
					desc = fmt.Sprintf("DEPRECATED, use %s", e.ReplacedBy)
				}
				table.Append([]string{
					e.Name,
					fmt.Sprintf("%d", len(e.Table)),
					desc,
				})
			}
			table.SetFooter([]string{fmt.Sprintf("Total %d", len(all)), "", ""})

			table.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s", buf.String())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
