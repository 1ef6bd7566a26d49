package commands

import (
	"bytes"

	"github.com/modelenv/gpusync/pkg/profile"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newListGPUsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "list-gpus",
		Aliases: []string{"ls"},
		Short:   "List the supported GPU profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(profileTable(newResolver().Profiles()))
			cmd.Println("\nAny other GPU falls back to the base configuration (plain `uv sync`).")
			return nil
		},
	}
	return c
}

func profileTable(profiles []profile.Profile) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)

	table.SetHeader([]string{"NAME", "GPU", "CHANNEL", "GROUP"})

	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, // NAME
		tablewriter.ALIGN_LEFT, // GPU
		tablewriter.ALIGN_LEFT, // CHANNEL
		tablewriter.ALIGN_LEFT, // GROUP
	})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, p := range profiles {
		table.Append([]string{p.Name, p.DisplayName, string(p.Channel), p.Group})
	}

	table.Render()
	return buf.String()
}
