package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jonathantroyer/base24gen/base/errors"
	"github.com/jonathantroyer/base24gen/config"
	"github.com/jonathantroyer/base24gen/palette"
	"github.com/jonathantroyer/base24gen/scheme"
)

var (
	genBackground string
	genForeground string
	genName       string
	genAuthor     string
	genVariant    string
	genOut        string
	genFormat     string
	genWatch      bool
)

func init() {
	generateCmd.Flags().StringVar(&genBackground, "bg", "", "background color, any CSS syntax (overrides config)")
	generateCmd.Flags().StringVar(&genForeground, "fg", "", "foreground color, any CSS syntax (overrides config)")
	generateCmd.Flags().StringVar(&genName, "name", "Custom Scheme", "scheme display name")
	generateCmd.Flags().StringVar(&genAuthor, "author", "", "scheme author")
	generateCmd.Flags().StringVar(&genVariant, "variant", "", "force \"dark\" or \"light\" (default: auto)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "output file path (default: stdout)")
	generateCmd.Flags().StringVar(&genFormat, "format", "yaml", "output format: yaml or json")
	generateCmd.Flags().BoolVar(&genWatch, "watch", false, "keep running, regenerating whenever --config changes")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Base24 scheme from a background and foreground color",
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genWatch {
		return runGenerateWatch(cmd)
	}

	cfgFile, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, &cfgFile)

	data, err := generateOnce(cfgFile)
	if err != nil {
		return err
	}
	return writeOutput(cmd, data)
}

// runGenerateWatch regenerates and rewrites the output file every time
// --config changes on disk, the fsnotify-backed live-reload loop
// SPEC_FULL's ambient configuration section describes.
func runGenerateWatch(cmd *cobra.Command) error {
	if configPath == "" {
		return errors.Log(fmt.Errorf("--watch requires --config"))
	}

	regen := func(cfgFile config.File) {
		applyGenerateFlags(cmd, &cfgFile)
		data, err := generateOnce(cfgFile)
		if err != nil {
			slog.Error("generate: watch regeneration failed", "error", err)
			return
		}
		if err := writeOutput(cmd, data); err != nil {
			slog.Error("generate: watch write failed", "error", err)
		}
	}

	initial, err := config.Load(configPath)
	if err != nil {
		return err
	}
	regen(initial)

	stop, err := config.Watch(configPath, regen)
	if err != nil {
		return errors.Log(err)
	}
	defer stop()

	slog.Info("generate: watching config for changes", "path", configPath)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}

func applyGenerateFlags(cmd *cobra.Command, cfgFile *config.File) {
	if genBackground != "" {
		cfgFile.Colors.Background = genBackground
	}
	if genForeground != "" {
		cfgFile.Colors.Foreground = genForeground
	}
	if genVariant != "" {
		cfgFile.Theme.Variant = genVariant
	}
	if cmd.Flags().Changed("name") || cfgFile.Theme.Name == "" {
		cfgFile.Theme.Name = genName
	}
	if genAuthor != "" {
		cfgFile.Theme.Author = genAuthor
	}
}

func generateOnce(cfgFile config.File) ([]byte, error) {
	paletteCfg, err := cfgFile.ToPaletteConfig()
	if err != nil {
		return nil, err
	}

	pal, warnings, err := palette.Generate(context.Background(), paletteCfg)
	if err != nil {
		return nil, errors.Log(err)
	}
	for _, w := range warnings {
		slog.Warn("generate: accent warning", "detail", w)
	}

	s := scheme.FromPalette(pal, cfgFile.Theme.Name, cfgFile.Theme.Author)

	switch genFormat {
	case "json":
		return scheme.WriteJSON(s)
	default:
		return scheme.WriteYAML(s)
	}
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if genOut == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return errors.Log(os.WriteFile(genOut, data, 0o644))
}
