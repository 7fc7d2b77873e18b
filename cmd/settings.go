package cmd

import (
	"fmt"

	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/pkg/utils"
	"github.com/kaytu-io/racecount/preferences"
	"github.com/kaytu-io/racecount/view"
	"github.com/spf13/cobra"
)

type settings struct {
	Config   harness.Config
	Output   view.Output
	Progress bool
	NoColor  bool
}

// resolveSettings layers defaults, the preferences file and the flags the
// user actually set, in that order.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := settings{
		Config: harness.DefaultConfig(),
		Output: view.OutputTable,
	}

	preferencesFlag := utils.ReadStringFlag(cmd, "preferences")
	if len(preferencesFlag) > 0 {
		p, err := preferences.Load(preferencesFlag)
		if err != nil {
			return s, err
		}
		err = p.ApplyTo(&s.Config)
		if err != nil {
			return s, err
		}
		if p.Output != nil {
			s.Output, err = view.ParseOutput(*p.Output)
			if err != nil {
				return s, err
			}
		}
		if p.Progress != nil {
			s.Progress = *p.Progress
		}
	}

	if utils.FlagChanged(cmd, "increments") {
		n, err := utils.ReadIntFlag(cmd, "increments")
		if err != nil {
			return s, err
		}
		s.Config.Increments = n
	}
	if utils.FlagChanged(cmd, "timeout") {
		d, err := utils.ReadDurationFlag(cmd, "timeout")
		if err != nil {
			return s, err
		}
		s.Config.Timeout = d
	}
	if utils.FlagChanged(cmd, "output") {
		o, err := view.ParseOutput(utils.ReadStringFlag(cmd, "output"))
		if err != nil {
			return s, err
		}
		s.Output = o
	}
	if utils.FlagChanged(cmd, "progress") {
		s.Progress = utils.ReadBooleanFlag(cmd, "progress")
	}
	s.NoColor = utils.ReadBooleanFlag(cmd, "no-color")

	if s.Progress && s.Output == view.OutputInteractive {
		return s, fmt.Errorf("[resolveSettings] progress bar cannot be combined with interactive output: %w", harness.ErrInvalidConfig)
	}

	return s, s.Config.Validate()
}
