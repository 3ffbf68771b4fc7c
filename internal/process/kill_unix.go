//go:build !windows

// Package process stops the headless Chrome process trees started for PDF
// rendering.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, which
// reaches Chrome's renderer and GPU helpers.
func KillProcessGroup(pid int) {
	// Best effort: launcher.Kill follows for processes outside the group.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
