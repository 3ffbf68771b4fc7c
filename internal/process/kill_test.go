package process

// Notes:
// - Only a PID that cannot exist is used. Real Chrome trees are stopped in
//   the root package integration tests when the exporter pool closes.
// - PID 0 would target the test's own process group and is never used.

import (
	"os/exec"
	"runtime"
	"testing"
	"time"
)

func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}

func TestKillProcessGroup_ChildProcess(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("sleep is not available on Windows")
	}

	cmd := exec.Command("sleep", "30")
	setProcessGroup(cmd)
	if err := cmd.Start(); err != nil {
		t.Skipf("cannot start sleep: %v", err)
	}

	KillProcessGroup(cmd.Process.Pid)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		if err == nil {
			t.Error("expected the killed process to exit with an error")
		}
	case <-time.After(5 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatal("process still running after KillProcessGroup")
	}
}
