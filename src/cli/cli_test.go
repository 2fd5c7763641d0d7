package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contre95/mediastore/src/features/config"
	"github.com/contre95/mediastore/src/infra/appdir"
	"github.com/contre95/mediastore/src/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv points the data directory at a temp dir and returns it.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Setenv(config.DataDirEnv, dataDir)
	return dataDir
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cmd := NewRootCommand(appdir.HostEnv())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestImportListPathDelete(t *testing.T) {
	dataDir := setupTestEnv(t)
	src := filepath.Join(t.TempDir(), "adzan.mp3")
	require.NoError(t, os.WriteFile(src, []byte("audio"), 0644))

	stdout, err := runCmd(t, "import", src, "Audio")
	require.NoError(t, err)
	assert.Equal(t, "Audio/adzan.mp3\n", stdout)

	stdout, err = runCmd(t, "list", "Audio")
	require.NoError(t, err)
	assert.Equal(t, "adzan.mp3\n", stdout)

	stdout, err = runCmd(t, "list", "Audio", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `["adzan.mp3"]`, stdout)

	stdout, err = runCmd(t, "path", "Audio", "adzan.mp3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, media.RootDirName, "Audio", "adzan.mp3"), strings.TrimSpace(stdout))

	_, err = runCmd(t, "delete", "Audio", "adzan.mp3")
	require.NoError(t, err)

	_, err = runCmd(t, "path", "Audio", "adzan.mp3")
	require.ErrorIs(t, err, media.ErrFileNotFound)
}

func TestImportErrors(t *testing.T) {
	setupTestEnv(t)
	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	_, err := runCmd(t, "import", src, "Document")
	require.ErrorIs(t, err, media.ErrInvalidCategory)

	_, err = runCmd(t, "import", src+".missing", "Image")
	require.ErrorIs(t, err, media.ErrSourceNotFound)

	_, err = runCmd(t, "import", src)
	require.Error(t, err)
}

func TestBase(t *testing.T) {
	dataDir := setupTestEnv(t)

	stdout, err := runCmd(t, "base")
	require.NoError(t, err)
	root := filepath.Join(dataDir, media.RootDirName)
	assert.Equal(t, root, strings.TrimSpace(stdout))
	assert.DirExists(t, root)
}

func TestListEmptyCategory(t *testing.T) {
	setupTestEnv(t)

	stdout, err := runCmd(t, "list", "Video")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestExtensions(t *testing.T) {
	setupTestEnv(t)

	stdout, err := runCmd(t, "extensions")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Image: png jpg jpeg")
	assert.Contains(t, stdout, "Video: mp4")

	stdout, err = runCmd(t, "extensions", "Audio")
	require.NoError(t, err)
	assert.Equal(t, "mp3 wav ogg m4a aac flac\n", stdout)

	_, err = runCmd(t, "extensions", "Document")
	require.ErrorIs(t, err, media.ErrInvalidCategory)
}

func TestConfigShowAndSave(t *testing.T) {
	dataDir := setupTestEnv(t)

	stdout, err := runCmd(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"AppIdentifier":"com.jadwalsholat.display"`)

	_, err = runCmd(t, "config", "show", "--format", "toml")
	require.Error(t, err)

	out := filepath.Join(t.TempDir(), "effective.yaml")
	stdout, err = runCmd(t, "config", "save", out)
	require.NoError(t, err)
	assert.Equal(t, out+"\n", stdout)

	saved, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "dataDir: "+dataDir)

	t.Setenv(config.DataDirEnv, "")
	reloaded, err := config.Load(out)
	require.NoError(t, err)
	assert.Equal(t, dataDir, reloaded.Get().DataDir)
}
