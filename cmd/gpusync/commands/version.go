package commands

import (
	"github.com/spf13/cobra"
)

var Version = "dev"

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show the gpusync version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("gpusync version %s\n", Version)
		},
	}
	return c
}
