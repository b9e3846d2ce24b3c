package presentation

import (
	"fmt"
	"io"

	"localize/internal/domain"
)

type Printer struct {
	Writer io.Writer
}

// PrintResult renders the terminal report for a finished job: one line per
// folder, the failed files, and the status line last.
func (p Printer) PrintResult(res domain.Result) {
	for _, fr := range res.Folders {
		if fr.Renamed {
			fmt.Fprintf(p.Writer, "%s: %d files copied, renamed to %s\n", fr.Folder, fr.Copied, fr.RenamedTo)
			continue
		}
		fmt.Fprintf(p.Writer, "%s: %d files copied, %d failed, not renamed\n", fr.Folder, fr.Copied, fr.Failed)
	}

	if len(res.Errors) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, "Failed:")
		for _, copyErr := range res.Errors {
			fmt.Fprintf(p.Writer, "- %s\n", copyErr.Error())
		}
	}

	fmt.Fprintln(p.Writer)
	fmt.Fprintf(p.Writer, "Copied %d of %d files in %s.\n",
		res.Copied, res.Total, domain.FormatSeconds(int(res.Elapsed.Seconds())))
	fmt.Fprintf(p.Writer, "Status: %s\n", res.Status())
}
