package commands

import (
	"github.com/modelenv/gpusync/pkg/resolve"
	"github.com/modelenv/gpusync/pkg/system"
	"github.com/modelenv/gpusync/pkg/uv"
	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "detect",
		Short: "Show the detected GPU and the profile it resolves to",
		RunE: func(cmd *cobra.Command, args []string) error {
			if summary, err := system.Summarize(); err == nil {
				cmd.Printf("Host: %s (%s), kernel %s, %s RAM\n",
					summary.OS, summary.Architecture, summary.Kernel, summary.FormatRAM())
			} else {
				log.Warnf("Could not read host info: %v", err)
			}

			res, err := newResolver().Resolve(cmd.Context(), resolve.Request{})
			if err != nil {
				return err
			}
			if res.Fallback {
				cmd.Println("GPU: no supported GPU detected")
			} else {
				cmd.Printf("GPU: %s\n", res.Detected)
			}
			cmd.Printf("Profile: %s (%s channel)\n", res.Profile.Name, res.Profile.Channel)
			cmd.Printf("Sync command: %s\n", uv.CommandLine(res.Command))
			return nil
		},
	}
	return c
}
