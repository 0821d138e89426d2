package osfile

import (
	"context"
	"os"

	"github.com/csdesktop/csfm/pkg/files"
)

var osReadDir = os.ReadDir
var osRemove = os.Remove
var osRemoveAll = os.RemoveAll

var _ files.Store = (*Store)(nil)

// Store is the local filesystem store.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osRemove(path)
}

func (s Store) DeleteAll(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osRemoveAll(path)
}
