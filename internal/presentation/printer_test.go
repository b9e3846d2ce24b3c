package presentation

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"localize/internal/domain"
)

func TestPrintResultCompleted(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintResult(domain.Result{
		Folders: []domain.FolderResult{
			{Folder: "/src/shot01", Copied: 12, Renamed: true, RenamedTo: "/src/_shot01"},
		},
		Copied:  12,
		Total:   12,
		Elapsed: 61 * time.Second,
	})

	out := buf.String()
	if !strings.Contains(out, "renamed to /src/_shot01") {
		t.Fatalf("missing rename line:\n%s", out)
	}
	if !strings.Contains(out, "Copied 12 of 12 files in 00:01:01.") {
		t.Fatalf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "Status: completed") {
		t.Fatalf("missing status line:\n%s", out)
	}
}

func TestPrintResultWithErrors(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintResult(domain.Result{
		Folders: []domain.FolderResult{
			{Folder: "/src/shot01", Copied: 3, Failed: 1},
		},
		Copied: 3,
		Total:  4,
		Errors: []domain.CopyError{
			{Path: "/src/shot01/bad.exr", Err: errors.New("disk full")},
		},
	})

	out := buf.String()
	if !strings.Contains(out, "1 failed, not renamed") {
		t.Fatalf("missing folder failure line:\n%s", out)
	}
	if !strings.Contains(out, "/src/shot01/bad.exr: disk full") {
		t.Fatalf("missing failed file:\n%s", out)
	}
	if !strings.Contains(out, "Status: completed with 1 error") {
		t.Fatalf("missing status line:\n%s", out)
	}
}

func TestPrintResultAborted(t *testing.T) {
	var buf bytes.Buffer
	printer := Printer{Writer: &buf}

	printer.PrintResult(domain.Result{
		Aborted: errors.New("permission denied"),
	})

	if !strings.Contains(buf.String(), "Status: aborted: permission denied") {
		t.Fatalf("missing aborted status:\n%s", buf.String())
	}
}
