package commands

import (
	"errors"

	"github.com/modelenv/gpusync/pkg/verify"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var loadModel bool
	var modelName, pythonBinary string
	c := &cobra.Command{
		Use:   "verify",
		Short: "Verify that the installed PyTorch stack loads and can reach the GPU",
		RunE: func(cmd *cobra.Command, args []string) error {
			binary := pythonBinary
			if binary == "" {
				binary = cfg.Python.Binary
			}
			verifier := verify.New(log, binary, cmd.OutOrStdout())
			err := verifier.Run(cmd.Context(), verify.Options{
				LoadModel: loadModel,
				ModelName: modelName,
			})
			if err != nil {
				var verifyErr *verify.Error
				if errors.As(err, &verifyErr) {
					cmd.PrintErrf("%v\n", verifyErr)
					osExit(verifyErr.ExitCode)
					return nil
				}
				return err
			}
			cmd.Println("Verification passed")
			return nil
		},
	}
	c.Flags().BoolVar(&loadModel, "load-model", false,
		"Also load a reranker model and run one inference (downloads the model on first use)")
	c.Flags().StringVar(&modelName, "model-name", verify.DefaultModelName,
		"Model to load with --load-model")
	c.Flags().StringVar(&pythonBinary, "python", "",
		"Python interpreter to run the verification with")
	return c
}
