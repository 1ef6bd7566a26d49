package commands

import (
	"os"

	"github.com/modelenv/gpusync/pkg/config"
	"github.com/modelenv/gpusync/pkg/detect"
	"github.com/modelenv/gpusync/pkg/resolve"
	"github.com/modelenv/gpusync/pkg/uv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

// cfg holds the loaded configuration for the lifetime of the process.
var cfg = config.Default()

// osExit is a test seam for paths that must propagate subprocess exit codes.
var osExit = os.Exit

// newDetector is a test seam for substituting canned GPU detection.
var newDetector = func() detect.Detector {
	return detect.Default(log)
}

// newRunner is a test seam for substituting the package-manager subprocess.
var newRunner = func(cmd *cobra.Command) uv.Runner {
	return uv.NewRunner(log, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func NewRootCmd() *cobra.Command {
	var configPath string
	var debug bool
	rootCmd := &cobra.Command{
		Use:           "gpusync",
		Short:         "GPU-aware PyTorch dependency sync",
		Long:          "gpusync detects the local GPU, selects a matching dependency profile and drives uv to install it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(logrus.DebugLevel)
			}
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a gpusync config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging")
	rootCmd.AddCommand(
		newSyncCmd(),
		newListGPUsCmd(),
		newDetectCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// newResolver assembles a resolver from the loaded configuration.
func newResolver() *resolve.Resolver {
	uvConfig := uv.NewDefaultConfig()
	if cfg.UV.Binary != "" {
		uvConfig.Binary = cfg.UV.Binary
	}
	uvConfig.Args = cfg.UV.Args
	return resolve.New(log, cfg.Table(), newDetector(), cfg.Strategy(), uvConfig)
}
