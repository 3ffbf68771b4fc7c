package main

import (
	"runtime"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "version")

	if res.code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", res.code, ExitSuccess, res.stderr)
	}
	want := "scholardraft " + Version + " (" + runtime.Version()
	if !strings.HasPrefix(res.stdout, want) {
		t.Errorf("stdout = %q, want prefix %q", res.stdout, want)
	}
}

func TestVersion_IgnoresBrokenConfig(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "version", "--config", "/nonexistent/scholardraft.yaml")

	if res.code != ExitSuccess {
		t.Errorf("exit code = %d, want %d (stderr: %s)", res.code, ExitSuccess, res.stderr)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "publish")

	if res.code != ExitUsage {
		t.Errorf("exit code = %d, want %d", res.code, ExitUsage)
	}
	if !strings.Contains(res.stderr, "unknown command") {
		t.Errorf("stderr = %q, want unknown command", res.stderr)
	}
}

func TestRun_MissingConfig(t *testing.T) {
	t.Parallel()

	res := runCLI(t, "", "toc", "--config", "/nonexistent/scholardraft.yaml", "-c", "draft.json")

	if res.code != ExitUsage {
		t.Errorf("exit code = %d, want %d", res.code, ExitUsage)
	}
	if !strings.Contains(res.stderr, "config file not found") {
		t.Errorf("stderr = %q, want config file not found", res.stderr)
	}
}
