package presentation

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"localize/internal/app"
	"localize/internal/domain"
)

// RunPlain drains worker events in headless mode, driving a terminal
// progress bar on stderr while log lines go to stdout. It returns the final
// Result once the worker closes the channel.
func RunPlain(events <-chan app.Event) domain.Result {
	var bar *progressbar.ProgressBar

	var res domain.Result
	for ev := range events {
		switch ev.Kind {
		case app.EventFileCopied:
			if bar == nil {
				bar = newBar(ev.Total)
			}
			_ = bar.Set(ev.Copied)
			bar.Describe(fmt.Sprintf("localizing (ETA %s)", domain.FormatSeconds(int(ev.Remaining.Seconds()))))
		case app.EventJobDone:
			if bar != nil {
				_ = bar.Finish()
			}
			if ev.Result != nil {
				res = *ev.Result
			}
		}
	}
	return res
}

func newBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("localizing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
	)
}
