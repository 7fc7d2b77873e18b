package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kaytu-io/racecount/cmd/predef"
	"github.com/kaytu-io/racecount/pkg/counter"
	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/style"
	"github.com/kaytu-io/racecount/view"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "racecount",
		Short: "Increment a shared counter from two goroutines with and without synchronization",
		Long: "Runs three increment strategies (unsynchronized, mutex, atomic) on two goroutines each,\n" +
			"one strategy after another, and reports the final counter and elapsed time of every run.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHarness(cmd)
		},
	}

	rootCmd.AddCommand(predef.VersionCmd)

	rootCmd.Flags().Int("increments", harness.DefaultIncrements, "Increments performed by each goroutine")
	rootCmd.Flags().String("output", string(view.OutputTable), "Show results in selected output (possible values: table, pretty, csv, json, interactive. default value: table)")
	rootCmd.Flags().Duration("timeout", 0, "Give up waiting for a strategy after this long (0 waits forever)")
	rootCmd.Flags().String("preferences", "", "Path to preferences file (yaml)")
	rootCmd.Flags().Bool("progress", false, "Show a progress bar on stderr (not available with interactive output)")
	rootCmd.Flags().Bool("no-color", false, "Disable colored output")

	return rootCmd
}

func runHarness(cmd *cobra.Command) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if s.NoColor {
		style.DisableColor()
	}

	strategies := counter.All()
	if s.Output == view.OutputInteractive {
		return runInteractive(cmd.Context(), strategies, s.Config)
	}

	var observers []harness.Observer
	if s.Progress {
		observers = append(observers, newProgress(cmd.ErrOrStderr(), len(strategies)))
	}

	results, err := harness.RunAll(cmd.Context(), strategies, s.Config, observers...)
	if err != nil {
		return err
	}
	return view.Render(cmd.OutOrStdout(), s.Output, results)
}

func ExecuteContext(ctx context.Context) {
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
