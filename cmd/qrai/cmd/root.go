package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/supernovae-ai/qrai-scanner/internal/config"
	"github.com/supernovae-ai/qrai-scanner/internal/version"
)

var globalConfig *config.Config

// rootCmd validates a single image when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "qrai [flags] <image>",
	Short: "Validate QR codes and compute scannability scores",
	Long: `qrai decodes QR codes embedded in visually complex images - AI-generated,
stylised, logo-overlaid, low-contrast - and assigns each image a
scannability score between 0 and 100 that predicts how reliably
real-world scanners will read it.

Examples:
  qrai qr.png              # full validation with score breakdown
  qrai -s qr.png           # print only the score (for scripts)
  qrai -d qr.png           # decode only, skip stress tests
  qrai -f -j qr.png        # fast validation, JSON output
  qrai batch ./codes/*.png # validate many files in parallel`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
	// Errors are returned by the commands and printed once by Execute.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Exit code 0 on success, 1 on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// GetRootCommand returns the root command for testing purposes.
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "JSON output")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	rootCmd.Flags().BoolP("score-only", "s", false, "output only the score (0-100)")
	rootCmd.Flags().BoolP("decode-only", "d", false, "decode only, skip stress tests entirely")
	rootCmd.Flags().BoolP("fast", "f", false, "fast validation with reduced stress tests (~2x faster)")
	rootCmd.Flags().BoolP("timing", "t", false, "show timing information on stderr")
	rootCmd.Flags().BoolP("quiet", "q", false, "minimal output")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("fast", rootCmd.Flags().Lookup("fast"))
}

func initConfig() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	globalConfig = cfg
	setupLogging(cfg.LogLevel)
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

func runRoot(cmd *cobra.Command, args []string) error {
	if v, _ := cmd.PersistentFlags().GetBool("version"); v {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	}
	if len(args) == 0 {
		return cmd.Help()
	}
	return runValidate(cmd, args[0])
}
