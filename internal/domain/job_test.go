package domain

import (
	"path/filepath"
	"testing"
)

func TestJobTargetFor(t *testing.T) {
	job := Job{SourceRoot: "/renders", DestinationRoot: "/local"}

	src := filepath.Join("/renders", "shot01", "frame.0001.exr")
	target, err := job.TargetFor(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join("/local", "shot01", "frame.0001.exr")
	if target != want {
		t.Fatalf("expected %s, got %s", want, target)
	}
}

func TestJobRejectsPathsOutsideSourceRoot(t *testing.T) {
	job := Job{SourceRoot: "/renders", DestinationRoot: "/local"}

	if _, err := job.TargetFor("/elsewhere/shot01"); err == nil {
		t.Fatalf("expected error for path outside source root")
	}
}

func TestMigratedName(t *testing.T) {
	got := MigratedName(filepath.Join("/renders", "shot01"))
	want := filepath.Join("/renders", "_shot01")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestResultStatus(t *testing.T) {
	if got := (Result{}).Status(); got != "completed" {
		t.Fatalf("expected completed, got %q", got)
	}

	res := Result{Errors: []CopyError{{Path: "a"}}}
	if got := res.Status(); got != "completed with 1 error" {
		t.Fatalf("unexpected status %q", got)
	}

	res.Errors = append(res.Errors, CopyError{Path: "b"})
	if got := res.Status(); got != "completed with 2 errors" {
		t.Fatalf("unexpected status %q", got)
	}
}
