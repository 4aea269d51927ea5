package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	qrai "github.com/supernovae-ai/qrai-scanner"
)

var checkCmd = &cobra.Command{
	Use:   "check <image>",
	Short: "Exit 0 if the image scores at least the threshold",
	Long: `Validate an image and compare its score against a minimum. Intended
for CI gates: exit code 0 when the score passes, 1 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Uint8("threshold", 0, "minimum acceptable score (default from config, 70)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetUint8("threshold")
	if !cmd.Flags().Changed("threshold") && globalConfig != nil {
		threshold = globalConfig.Threshold
	}

	score := qrai.Score(args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "%d\n", score)
	if score < threshold {
		return fmt.Errorf("score %d below threshold %d", score, threshold)
	}
	return nil
}
