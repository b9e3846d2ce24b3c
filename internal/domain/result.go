package domain

import (
	"fmt"
	"time"
)

// CopyError records a single file that could not be copied.
type CopyError struct {
	Path string
	Err  error
}

func (e CopyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// FolderResult summarizes one source folder after the worker is done with it.
type FolderResult struct {
	Folder    string
	Copied    int
	Failed    int
	Renamed   bool
	RenamedTo string
}

// Result is the terminal outcome of a Job.
type Result struct {
	Folders []FolderResult
	Copied  int
	Total   int
	Errors  []CopyError
	Aborted error
	Elapsed time.Duration
}

// Status renders the terminal status line: "completed",
// "completed with N errors", or "aborted: <reason>".
func (r Result) Status() string {
	if r.Aborted != nil {
		return fmt.Sprintf("aborted: %v", r.Aborted)
	}
	switch n := len(r.Errors); n {
	case 0:
		return "completed"
	case 1:
		return "completed with 1 error"
	default:
		return fmt.Sprintf("completed with %d errors", n)
	}
}
