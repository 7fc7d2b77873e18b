package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/kaytu-io/racecount/pkg/harness"
	"github.com/kaytu-io/racecount/view"
	"github.com/schollz/progressbar/v3"
)

var raceColor = color.New(color.FgRed, color.Bold)

type progress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{
		w: w,
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("starting"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(20),
			progressbar.OptionOnCompletion(func() {
				_, _ = io.WriteString(w, "\n")
			}),
		),
	}
}

func (p *progress) Started(name string) {
	p.bar.Describe("running " + name)
}

func (p *progress) Finished(result harness.Result) {
	if result.RaceDetected() {
		p.bar.Describe(raceColor.Sprint(result.Name + ": " + view.CommentRaceDetected))
	} else {
		p.bar.Describe(result.Name + ": " + view.CommentOK)
	}
	_ = p.bar.Add(1)
}
