package csfm

import (
	"fmt"
	"path/filepath"
)

// openCommand dispatches a path to the OS launcher. A launch failure
// is reported and never terminates the process.
func (c *Core) openCommand(path string) Command {
	launch := c.launch
	notify := c.notify
	return func() Message {
		if err := launch.Open(path); err != nil {
			notify.Notify(fmt.Sprintf("Failed to open '%s': %v", filepath.Base(path), err))
		}
		return nil
	}
}
