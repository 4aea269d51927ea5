package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	qrai "github.com/supernovae-ai/qrai-scanner"
)

var batchCmd = &cobra.Command{
	Use:   "batch <image>...",
	Short: "Validate multiple images in parallel",
	Long: `Validate the given images in parallel and print one
line per file. Individual failures never abort the batch; the command
exits non-zero if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolP("fast", "f", false, "fast validation with reduced stress tests")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	fast, _ := cmd.Flags().GetBool("fast")
	jsonOut := viper.GetBool("json")

	results := qrai.ValidateFiles(args, qrai.BatchOptions{Fast: fast})

	if jsonOut {
		type line struct {
			Path   string                 `json:"path"`
			Result *qrai.ValidationResult `json:"result,omitempty"`
			Error  string                 `json:"error,omitempty"`
		}
		lines := make([]line, 0, len(results))
		for _, r := range results {
			l := line{Path: r.Path, Result: r.Result}
			if r.Err != nil {
				l.Error = r.Err.Error()
			}
			lines = append(lines, l)
		}
		if err := printJSON(cmd.OutOrStdout(), lines); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if !jsonOut {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s error: %v\n", r.Path, r.Err)
			}
			continue
		}
		if !jsonOut {
			fmt.Fprintf(cmd.OutOrStdout(), "%-40s score %3d (%s)\n",
				r.Path, r.Result.Score, qrai.RatingForScore(r.Result.Score))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed validation", failed, len(results))
	}
	return nil
}
