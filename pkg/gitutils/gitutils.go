package gitutils

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

var osStat = os.Stat
var plainOpen = git.PlainOpen

// RepositoryRoot walks up from dirPath looking for a .git directory
// and returns the repository root, or "" when dirPath is not inside a
// repository.
func RepositoryRoot(dirPath string) string {
	dirPath, err := filepath.Abs(dirPath)
	if err != nil {
		return ""
	}
	for {
		if info, err := osStat(filepath.Join(dirPath, ".git")); err == nil && info.IsDir() {
			return dirPath
		}
		parent := filepath.Dir(dirPath)
		if parent == dirPath {
			return ""
		}
		dirPath = parent
	}
}

// Status classifies a worktree entry for listing decoration.
type Status byte

const (
	StatusNone Status = iota
	StatusUntracked
	StatusAdded
	StatusModified
)

// DirStatuses returns the git status of every changed entry directly
// under dir, keyed by absolute path. A change somewhere below a
// subdirectory marks that subdirectory as modified. A nil map means
// dir is not inside a repository.
func DirStatuses(ctx context.Context, dir string) (map[string]Status, error) {
	root := RepositoryRoot(dir)
	if root == "" {
		return nil, nil
	}
	repo, err := plainOpen(root)
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, err
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]Status)
	for rel, fileStatus := range status {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		code := classify(fileStatus)
		if code == StatusNone {
			continue
		}
		abs := filepath.Join(root, filepath.FromSlash(rel))
		relToDir, err := filepath.Rel(dir, abs)
		if err != nil || relToDir == "." || strings.HasPrefix(relToDir, "..") {
			continue
		}
		parts := strings.SplitN(relToDir, string(filepath.Separator), 2)
		entryPath := filepath.Join(dir, parts[0])
		if len(parts) > 1 {
			// Change is below a subdirectory of dir.
			code = StatusModified
		}
		if code > statuses[entryPath] {
			statuses[entryPath] = code
		}
	}
	return statuses, nil
}

func classify(s *git.FileStatus) Status {
	if s == nil {
		return StatusNone
	}
	if s.Worktree == git.Untracked || s.Staging == git.Untracked {
		return StatusUntracked
	}
	if s.Staging == git.Added {
		return StatusAdded
	}
	if s.Worktree == git.Unmodified && s.Staging == git.Unmodified {
		return StatusNone
	}
	return StatusModified
}
