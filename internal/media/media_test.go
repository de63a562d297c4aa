package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestThumbnailArgs(t *testing.T) {
	got := ThumbnailArgs("/usr/bin/ffmpeg", "/stage/a.0001.png", "/stage/thumbnail.jpg")
	want := []string{"/usr/bin/ffmpeg", "-y", "-i", "/stage/a.0001.png", "-vf", "scale=300:-1", "-vframes", "1", "/stage/thumbnail.jpg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ThumbnailArgs mismatch (-want +got):\n%s", diff)
	}
}

func TestToolPath_EnvFile(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "myffmpeg")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PIPEOPS_FFMPEG_PATH", exe)
	got, err := ToolPath("ffmpeg")
	if err != nil {
		t.Fatalf("ToolPath: %v", err)
	}
	if got != exe {
		t.Errorf("ToolPath = %q, want %q", got, exe)
	}
}

func TestToolPath_EnvMissing(t *testing.T) {
	t.Setenv("PIPEOPS_FFMPEG_PATH", filepath.Join(t.TempDir(), "nope"))
	if _, err := ToolPath("ffmpeg"); err == nil {
		t.Fatal("expected error for missing override")
	}
}

func TestToolPath_NotInPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Setenv("PIPEOPS_NO_SUCH_TOOL_PATH", "")
	if _, err := ToolPath("no_such_tool"); err == nil || !strings.Contains(err.Error(), "PIPEOPS_NO_SUCH_TOOL_PATH") {
		t.Fatalf("expected not found error naming the env var, got %v", err)
	}
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	ctx := context.Background()
	out, err := ExecRunner{}.Run(ctx, []string{"/bin/sh", "-c", "echo hello"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("output = %q", out)
	}

	_, err = ExecRunner{}.Run(ctx, []string{"/bin/sh", "-c", "echo boom >&2; exit 3"})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}
	if exitErr.Code != 3 || !strings.Contains(exitErr.Output, "boom") {
		t.Errorf("unexpected exit error: %+v", exitErr)
	}

	if _, err := (ExecRunner{}).Run(ctx, nil); err == nil {
		t.Error("expected error for empty command line")
	}
}
