package files

import (
	"context"
	"os"
)

// Store abstracts the filesystem the browser operates on.
type Store interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// Delete removes a single file.
	Delete(ctx context.Context, path string) error
	// DeleteAll removes a directory and everything below it.
	DeleteAll(ctx context.Context, path string) error
}
