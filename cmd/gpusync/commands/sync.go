package commands

import (
	"bufio"
	"fmt"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/modelenv/gpusync/pkg/profile"
	"github.com/modelenv/gpusync/pkg/resolve"
	"github.com/modelenv/gpusync/pkg/uv"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	var auto, dryRun bool
	var gpuName, extraArgs string
	c := &cobra.Command{
		Use:   "sync",
		Short: "Resolve the GPU profile and sync dependencies with uv",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := shellwords.Parse(extraArgs)
			if err != nil {
				return fmt.Errorf("failed to parse --extra-args: %w", err)
			}

			resolver := newResolver()
			res, err := resolver.Resolve(cmd.Context(), resolve.Request{
				GPU:       gpuName,
				ExtraArgs: extra,
			})
			if err != nil {
				return err
			}

			printResolution(cmd, res, gpuName)
			commandLine := uv.CommandLine(res.Command)
			cmd.Printf("Sync command: %s\n", commandLine)

			if dryRun {
				cmd.Println("Dry run, command not executed")
				return nil
			}

			if !auto && !confirm(cmd, "Run this command now?") {
				cmd.Println("Aborted, run the command above to sync dependencies")
				return nil
			}

			cmd.Printf("Running %s...\n", commandLine)
			if err := newRunner(cmd).Run(cmd.Context(), res.Command); err != nil {
				cmd.PrintErrf("Sync failed: %v\n", err)
				osExit(uv.ExitCode(err))
				return nil
			}
			cmd.Println("Dependencies synced successfully")
			return nil
		},
	}
	c.Flags().BoolVar(&auto, "auto", false,
		"Run the sync command without asking for confirmation")
	c.Flags().StringVar(&gpuName, "gpu", "",
		"Force a specific GPU profile and skip detection")
	c.Flags().BoolVar(&dryRun, "dry-run", false,
		"Print the resolved command without executing it")
	c.Flags().StringVar(&extraArgs, "extra-args", "",
		"Additional arguments appended to the uv invocation")
	return c
}

func printResolution(cmd *cobra.Command, res resolve.Result, explicit string) {
	switch {
	case explicit != "":
		cmd.Printf("Using requested profile: %s\n", res.Profile.Name)
	case res.Fallback:
		cmd.Println("No supported GPU detected, using the base configuration")
	default:
		cmd.Printf("Detected GPU: %s\n", res.Detected)
		cmd.Printf("Selected profile: %s\n", res.Profile.Name)
	}
	if res.Profile.Channel == profile.ChannelNightly {
		cmd.Println("Profile uses the nightly PyTorch channel")
	}
}

// confirm asks the user a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, question string) bool {
	cmd.Printf("%s [y/N]: ", question)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
