package app

import (
	"context"
	"errors"
	"time"

	"localize/internal/domain"
	"localize/internal/logging"
)

// EventKind tags a progress event from the worker.
type EventKind int

const (
	EventFileCopied EventKind = iota
	EventFolderDone
	EventJobDone
)

// Event is one progress notification. FileCopied events carry the running
// counters and ETA; the final JobDone event carries the Result.
type Event struct {
	Kind      EventKind
	Folder    string
	File      string
	Copied    int
	Total     int
	Percent   float64
	Remaining time.Duration
	Result    *domain.Result
}

// Worker copies the folders of a Job sequentially on a single goroutine and
// streams Events on the returned channel. The channel is closed after the
// JobDone event. The worker owns all counters; consumers only see event
// payloads, so no locking is needed.
type Worker struct {
	FS      FileSystem
	Scanner Scanner
	Logger  logging.Logger
	// Now is the clock used for ETA math; nil means time.Now.
	Now func() time.Time
}

// Run starts the job in the background. Setup failures (a folder that cannot
// be enumerated during the up-front count) abort the whole job; per-file copy
// failures are recorded, skipped, and reported in the final Result.
func (w *Worker) Run(ctx context.Context, job domain.Job) <-chan Event {
	events := make(chan Event, 16)
	go func() {
		defer close(events)
		w.run(ctx, job, events)
	}()
	return events
}

func (w *Worker) run(ctx context.Context, job domain.Job, events chan<- Event) {
	now := w.Now
	if now == nil {
		now = time.Now
	}

	res := domain.Result{}
	finish := func(start time.Time) {
		res.Elapsed = now().Sub(start)
		events <- Event{Kind: EventJobDone, Copied: res.Copied, Total: res.Total, Percent: 100, Result: &res}
	}

	start := now()
	if w.FS == nil {
		res.Aborted = errors.New("worker requires FS")
		finish(start)
		return
	}

	total, err := w.Scanner.Total(job.Folders)
	if err != nil {
		res.Aborted = err
		finish(start)
		return
	}
	res.Total = total
	w.Logger.Infof("%d files to copy across %d folders", total, len(job.Folders))

	// The count walk above is not part of the throughput sample.
	start = now()

	for _, folder := range job.Folders {
		if ctx.Err() != nil {
			res.Aborted = ctx.Err()
			finish(start)
			return
		}

		fr := domain.FolderResult{Folder: folder}
		w.Logger.Infof("processing %s", folder)

		ok := w.copyFolder(ctx, job, folder, &fr, &res, start, now, events)
		if !ok {
			res.Folders = append(res.Folders, fr)
			finish(start)
			return
		}

		// The underscore rename is the "migrated" marker; a folder with
		// failed files keeps its original name so it stays authoritative.
		if fr.Failed == 0 {
			renamed := domain.MigratedName(folder)
			if err := w.FS.Rename(folder, renamed); err != nil {
				res.Errors = append(res.Errors, domain.CopyError{Path: folder, Err: err})
				fr.Failed++
			} else {
				fr.Renamed = true
				fr.RenamedTo = renamed
				w.Logger.Infof("renamed %s -> %s", folder, renamed)
			}
		}

		res.Folders = append(res.Folders, fr)
		events <- Event{
			Kind:    EventFolderDone,
			Folder:  folder,
			Copied:  res.Copied,
			Total:   res.Total,
			Percent: domain.EstimateProgress(res.Copied, res.Total, now().Sub(start)).Percent,
		}
	}

	finish(start)
}

// copyFolder copies every file of one folder. It returns false only when the
// job as a whole must stop (context canceled).
func (w *Worker) copyFolder(ctx context.Context, job domain.Job, folder string, fr *domain.FolderResult, res *domain.Result, start time.Time, now func() time.Time, events chan<- Event) bool {
	dest, err := job.TargetFor(folder)
	if err != nil {
		res.Errors = append(res.Errors, domain.CopyError{Path: folder, Err: err})
		fr.Failed++
		return true
	}
	w.Logger.Verbosef("creating destination folder %s", dest)
	if err := w.FS.MkdirAll(dest, 0o755); err != nil {
		res.Errors = append(res.Errors, domain.CopyError{Path: dest, Err: err})
		fr.Failed++
		return true
	}

	files, err := w.Scanner.Files(folder)
	if err != nil {
		// A duplicate entry whose source was already renamed lands here;
		// record it and keep going with the remaining folders.
		res.Errors = append(res.Errors, domain.CopyError{Path: folder, Err: err})
		fr.Failed++
		return true
	}

	for _, f := range files {
		if ctx.Err() != nil {
			res.Aborted = ctx.Err()
			return false
		}

		target, err := job.TargetFor(f)
		if err == nil {
			err = w.FS.CopyFile(f, target)
		}
		if err != nil {
			res.Errors = append(res.Errors, domain.CopyError{Path: f, Err: err})
			fr.Failed++
			w.Logger.Infof("copy failed for %s: %v", f, err)
			continue
		}

		res.Copied++
		fr.Copied++
		est := domain.EstimateProgress(res.Copied, res.Total, now().Sub(start))
		w.Logger.Verbosef("[%d/%d | %.0f%% | %s] %s -> %s",
			res.Copied, res.Total, est.Percent, domain.FormatSeconds(int(est.Remaining.Seconds())), f, target)
		events <- Event{
			Kind:      EventFileCopied,
			Folder:    folder,
			File:      f,
			Copied:    res.Copied,
			Total:     res.Total,
			Percent:   est.Percent,
			Remaining: est.Remaining,
		}
	}
	return true
}
