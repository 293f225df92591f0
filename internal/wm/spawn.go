package wm

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// Spawn launches a detached child process for a bound key/button action,
// putting it in its own session (Setsid) so it survives the window
// manager restarting in place.
func Spawn(argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait() // reap in the background; we never wait on spawned children synchronously
	return nil
}

// ReapChildren drains zombie children with a non-blocking Wait4 loop, for
// SIGCHLD-driven cleanup of anything not already reaped by Spawn's own
// goroutine (e.g. children inherited across a restart-in-place).
func ReapChildren() {
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		if err != nil || pid <= 0 {
			return
		}
	}
}
