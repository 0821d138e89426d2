package csfm

import (
	"context"
	"fmt"
	"path/filepath"
)

// deleteCommand wraps a removal behind the confirmation collaborator.
// Nothing is ever removed without a prior affirmative answer, and the
// current directory is re-listed in every outcome so out-of-band
// changes show up too.
func (c *Core) deleteCommand(path string, recursive bool) Command {
	name := filepath.Base(path)
	store := c.store
	confirm := c.confirm
	notify := c.notify
	return func() Message {
		var question string
		if recursive {
			question = fmt.Sprintf("Delete '%s' and all contents?", name)
		} else {
			question = fmt.Sprintf("Delete '%s'?", name)
		}
		if confirm.Ask(question) {
			ctx := context.Background()
			var err error
			if recursive {
				err = store.DeleteAll(ctx, path)
			} else {
				err = store.Delete(ctx, path)
			}
			if err != nil {
				notify.Notify(fmt.Sprintf("Failed to delete '%s': %v", name, err))
			}
		}
		return refreshNeeded{}
	}
}
