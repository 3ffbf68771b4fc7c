//go:build windows

// Package process stops the headless Chrome process trees started for PDF
// rendering.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates pid and its children with taskkill /F /T.
func KillProcessGroup(pid int) {
	// Best effort: launcher.Kill follows for processes outside the tree.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is an integer
}
