package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathantroyer/base24gen/scheme"
	"github.com/jonathantroyer/base24gen/validate"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <scheme.yaml>",
	Short: "Check a generated scheme's pairwise APCA contrast",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := scheme.ReadYAML(args[0])
	if err != nil {
		return err
	}
	pal, err := s.ToPalette()
	if err != nil {
		return err
	}

	results := validate.Report(pal)
	out := cmd.OutOrStdout()
	for _, r := range results {
		status := "ok"
		if !r.Passes {
			status = "FAIL"
		}
		if r.Missing {
			fmt.Fprintf(out, "[%s] %s on %s: slot missing\n", status, r.Pair.Foreground, r.Pair.Background)
			continue
		}
		fmt.Fprintf(out, "[%s] %s on %s: Lc=%.1f (need %.0f, %s)\n",
			status, r.Pair.Foreground, r.Pair.Background, r.Lc, r.Pair.MinLc, r.Pair.Purpose)
	}

	if !validate.Passes(results) {
		return fmt.Errorf("scheme %q failed validation", args[0])
	}
	return nil
}
