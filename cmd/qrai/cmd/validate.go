package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	qrai "github.com/supernovae-ai/qrai-scanner"
	"github.com/supernovae-ai/qrai-scanner/internal/common"
)

func runValidate(cmd *cobra.Command, path string) error {
	scoreOnly, _ := cmd.Flags().GetBool("score-only")
	decodeOnly, _ := cmd.Flags().GetBool("decode-only")
	timing, _ := cmd.Flags().GetBool("timing")
	quiet, _ := cmd.Flags().GetBool("quiet")
	// fast and json merge flag, environment and config file values.
	fast := viper.GetBool("fast")
	jsonOut := viper.GetBool("json")

	readTimer := common.NewNamedTimer("read")
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-provided image path is the CLI's purpose
	if err != nil {
		return fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	readTimer.Stop()

	out := cmd.OutOrStdout()

	if decodeOnly {
		t := common.NewNamedTimer("decode")
		result, err := qrai.DecodeOnly(data)
		t.Stop()
		if err != nil {
			return fmt.Errorf("failed to decode QR code: %w", err)
		}
		if timing {
			fmt.Fprintf(os.Stderr, "%s, %s\n", readTimer, t)
		}
		if jsonOut {
			return printJSON(out, result)
		}
		if !quiet {
			printDecodeResult(out, result, path)
		}
		return nil
	}

	t := common.NewNamedTimer("validate")
	var result *qrai.ValidationResult
	if fast {
		result, err = qrai.ValidateFast(data)
	} else {
		result, err = qrai.Validate(data)
	}
	t.Stop()
	if err != nil {
		return fmt.Errorf("failed to validate QR code: %w", err)
	}
	if timing {
		fmt.Fprintf(os.Stderr, "%s, %s\n", readTimer, t)
	}

	switch {
	case scoreOnly, quiet:
		fmt.Fprintln(out, result.Score)
	case jsonOut:
		return printJSON(out, result)
	default:
		printValidationResult(out, result, path, fast)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDecodeResult(w io.Writer, result *qrai.DecodeResult, path string) {
	fmt.Fprintf(w, "File:    %s\n", path)
	fmt.Fprintf(w, "Content: %s\n", result.Content)
	if m := result.Metadata; m != nil {
		fmt.Fprintf(w, "Version: %d\n", m.Version)
		fmt.Fprintf(w, "EC:      %s\n", m.ErrorCorrection)
		fmt.Fprintf(w, "Modules: %dx%d\n", m.Modules, m.Modules)
	}
}

func printValidationResult(w io.Writer, result *qrai.ValidationResult, path string, fast bool) {
	mode := "full"
	if fast {
		mode = "fast"
	}
	fmt.Fprintf(w, "File:   %s\n", path)
	fmt.Fprintf(w, "Score:  %d/100 (%s, %s validation)\n", result.Score, qrai.RatingForScore(result.Score), mode)
	if result.Content != nil {
		fmt.Fprintf(w, "Content: %s\n", *result.Content)
	}
	if m := result.Metadata; m != nil {
		fmt.Fprintf(w, "Version: %d  EC: %s  Modules: %dx%d  Decoders: %v\n",
			m.Version, m.ErrorCorrection, m.Modules, m.Modules, m.DecodersSuccess)
	}

	s := result.StressResults
	fmt.Fprintln(w, "Stress tests:")
	printStressBit(w, "original", s.Original)
	printStressBit(w, "downscale_50", s.Downscale50)
	printStressBit(w, "downscale_25", s.Downscale25)
	printStressBit(w, "blur_light", s.BlurLight)
	printStressBit(w, "blur_medium", s.BlurMedium)
	printStressBit(w, "low_contrast", s.LowContrast)
}

func printStressBit(w io.Writer, name string, passed bool) {
	mark := "FAIL"
	if passed {
		mark = "ok"
	}
	fmt.Fprintf(w, "  %-14s %s\n", name, mark)
}
