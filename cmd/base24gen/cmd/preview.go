package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathantroyer/base24gen/preview"
	"github.com/jonathantroyer/base24gen/scheme"
	"github.com/jonathantroyer/base24gen/tui"
)

var previewInteractive bool

func init() {
	previewCmd.Flags().BoolVar(&previewInteractive, "tui", false, "launch the interactive swatch/highlight viewer instead of printing once")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <scheme.yaml>",
	Short: "Render a generated scheme as a swatch grid and a highlighted code sample",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := scheme.ReadYAML(args[0])
	if err != nil {
		return err
	}
	pal, err := s.ToPalette()
	if err != nil {
		return err
	}

	if previewInteractive {
		return tui.Run(tui.New(s, pal, nil))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, preview.Swatches(pal))

	highlighted, err := preview.Highlight(pal)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, highlighted)
	return nil
}
