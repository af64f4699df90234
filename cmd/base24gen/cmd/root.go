// Package cmd builds the base24gen command tree: generate, validate,
// and preview, layered over the config package's defaults/file/flags
// stack, in the style of cogentcore's cmd/root.go (a single rootCmd,
// package-level subcommands registered from init).
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:           "base24gen",
	Short:         "base24gen generates perceptually-tuned Base24 terminal color schemes",
	Long:          "base24gen derives a 24-color Base24 terminal scheme from a background and a foreground color, guaranteeing every accent color clears an APCA contrast floor against the background.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(logFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (default: none; built-in defaults are used)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format: text or json")
}

// configureLogging installs the process-wide slog handler: a text
// handler for interactive TTY use, or a JSON handler when piped or
// explicitly requested, matching SPEC_FULL's ambient logging section.
func configureLogging(format string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		if stat, err := os.Stdout.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
	}
	slog.SetDefault(slog.New(handler))
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "base24gen:", err)
		return 1
	}
	return 0
}
