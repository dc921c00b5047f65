package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gitAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	// Commits need a committer identity regardless of --author.
	for _, kv := range [][2]string{{"user.name", "test"}, {"user.email", "test@example.com"}} {
		cmd := exec.Command("git", "config", kv[0], kv[1])
		cmd.Dir = dir
		require.NoError(t, cmd.Run())
	}
	return dir
}

func TestInitAndIsRepo(t *testing.T) {
	gitAvailable(t)

	dir := t.TempDir()
	assert.False(t, IsRepo(dir))
	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))
}

func TestAutoCommit_NotARepoIsNoop(t *testing.T) {
	gitAvailable(t)

	hash, err := AutoCommit(t.TempDir(), "msg", "Tally", "tally@localhost")
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestAutoCommit_CommitsChanges(t *testing.T) {
	gitAvailable(t)

	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte("[]"), 0o644))

	hash, err := AutoCommit(dir, "add: Coffee", "Tally", "tally@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "-1", "--format=%s|%an")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Equal(t, "add: Coffee|Tally\n", string(out))
}

func TestAutoCommit_CleanTreeIsNoop(t *testing.T) {
	gitAvailable(t)

	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte("[]"), 0o644))

	first, err := AutoCommit(dir, "first", "Tally", "tally@localhost")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := AutoCommit(dir, "second", "Tally", "tally@localhost")
	require.NoError(t, err)
	assert.Empty(t, second, "nothing changed, nothing committed")
}
