package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kaytu-io/racecount/controller"
	"github.com/kaytu-io/racecount/pkg/counter"
	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/view"
)

func runInteractive(ctx context.Context, strategies []counter.Strategy, cfg harness.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runs := controller.NewRuns()
	p := tea.NewProgram(view.NewInteractiveView(runs, len(strategies)), tea.WithFPS(10))
	runs.SetOnChange(func() {
		p.Send(view.RunsChangedMsg{})
	})

	go func() {
		results, err := harness.RunAll(ctx, strategies, cfg, runs)
		p.Send(view.RunsDoneMsg{Results: results, Err: err})
	}()

	m, err := p.Run()
	cancel()
	if err != nil {
		return err
	}
	final, ok := m.(view.InteractiveView)
	if !ok {
		return fmt.Errorf("[runInteractive] unexpected model %T", m)
	}
	if !final.Done() && final.Err() == nil {
		return fmt.Errorf("[runInteractive] : %w", context.Canceled)
	}
	return final.Err()
}
