// Package launcher opens paths with the platform's default
// application.
package launcher

import (
	"os/exec"
	"runtime"
)

var goos = runtime.GOOS

var startDetached = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait() // reap, the exit status is not ours to care about
	}()
	return nil
}

// Open hands path to the OS default-application opener and returns
// without waiting for the spawned application to exit.
func Open(path string) error {
	switch goos {
	case "darwin":
		return startDetached("open", path)
	case "windows":
		return startDetached("cmd", "/c", "start", "", path)
	default:
		return startDetached("xdg-open", path)
	}
}

// Launcher adapts Open to the collaborator interface consumed by the
// browser core.
type Launcher struct{}

func (Launcher) Open(path string) error {
	return Open(path)
}
