package gitutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
)

func initRepoWithCommit(t *testing.T) (string, *git.Repository) {
	t.Helper()

	tempDir := t.TempDir()
	repo, err := git.PlainInit(tempDir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tempDir, "committed.txt"), []byte("line1\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("failed to get worktree: %v", err)
	}
	if _, err := worktree.Add("committed.txt"); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	_, err = worktree.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "T", Email: "t@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return tempDir, repo
}

func TestRepositoryRoot(t *testing.T) {
	t.Run("repo_root", func(t *testing.T) {
		root, _ := initRepoWithCommit(t)
		assert.Equal(t, root, RepositoryRoot(root))
	})

	t.Run("subdirectory", func(t *testing.T) {
		root, _ := initRepoWithCommit(t)
		sub := filepath.Join(root, "a", "b")
		assert.NoError(t, os.MkdirAll(sub, 0o755))
		assert.Equal(t, root, RepositoryRoot(sub))
	})

	t.Run("outside_any_repo", func(t *testing.T) {
		assert.Equal(t, "", RepositoryRoot(t.TempDir()))
	})
}

func TestDirStatuses(t *testing.T) {
	ctx := context.Background()

	t.Run("not_a_repo", func(t *testing.T) {
		statuses, err := DirStatuses(ctx, t.TempDir())
		assert.NoError(t, err)
		assert.Nil(t, statuses)
	})

	t.Run("untracked_and_modified", func(t *testing.T) {
		root, _ := initRepoWithCommit(t)
		assert.NoError(t, os.WriteFile(filepath.Join(root, "new.txt"), []byte("n"), 0o644))
		assert.NoError(t, os.WriteFile(filepath.Join(root, "committed.txt"), []byte("changed\n"), 0o644))

		statuses, err := DirStatuses(ctx, root)
		assert.NoError(t, err)
		assert.Equal(t, StatusUntracked, statuses[filepath.Join(root, "new.txt")])
		assert.Equal(t, StatusModified, statuses[filepath.Join(root, "committed.txt")])
	})

	t.Run("change_below_subdir_marks_subdir", func(t *testing.T) {
		root, _ := initRepoWithCommit(t)
		sub := filepath.Join(root, "pkg")
		assert.NoError(t, os.MkdirAll(sub, 0o755))
		assert.NoError(t, os.WriteFile(filepath.Join(sub, "new.txt"), []byte("n"), 0o644))

		statuses, err := DirStatuses(ctx, root)
		assert.NoError(t, err)
		assert.Equal(t, StatusModified, statuses[sub])
	})

	t.Run("clean_entries_absent", func(t *testing.T) {
		root, _ := initRepoWithCommit(t)
		statuses, err := DirStatuses(ctx, root)
		assert.NoError(t, err)
		_, present := statuses[filepath.Join(root, "committed.txt")]
		assert.False(t, present)
	})

	t.Run("statuses_scoped_to_dir", func(t *testing.T) {
		root, _ := initRepoWithCommit(t)
		sub := filepath.Join(root, "pkg")
		assert.NoError(t, os.MkdirAll(sub, 0o755))
		assert.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("n"), 0o644))

		statuses, err := DirStatuses(ctx, sub)
		assert.NoError(t, err)
		_, present := statuses[filepath.Join(root, "top.txt")]
		assert.False(t, present)
	})
}
