package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/novels/pkg/sources"
)

const siteCatalog = `[
	{"id":"alpha","title":"Alpha","author":"A","filePath":"",
	 "chapters":[{"id":"1","title":"Start","filePath":"/novels/alpha/1.txt"},{"id":"2","title":"Middle","filePath":"/novels/alpha/2.txt"}]},
	{"id":"solo","title":"Solo","author":"S","filePath":"/novels/solo.txt"}
]`

type testEnv struct {
	site string
	db   string
	conf string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	site := t.TempDir()
	files := map[string]string{
		"novels/index.json":  siteCatalog,
		"novels/alpha/1.txt": "First one.\n\nFirst two.",
		"novels/alpha/2.txt": "Second one.\n\nSecond two.",
		"novels/solo.txt":    "Alone.",
	}
	for name, body := range files {
		path := filepath.Join(site, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}

	dir := t.TempDir()
	return testEnv{
		site: site,
		db:   filepath.Join(dir, "novels.db"),
		conf: filepath.Join(dir, "config.yaml"),
	}
}

// run executes the CLI with fresh flag values and returns its output.
func (e testEnv) run(args ...string) (string, error) {
	configPath, sourceFlag, dbFlag, verbose = "", "", "", false
	readChapter, epubOutput = 0, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--config", e.conf, "--source", e.site, "--db", e.db))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog (2 novels)")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Solo")
}

func TestReadCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run("read", "alpha", "--chapter", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "第 2 話")
	assert.Contains(t, out, "Second one.")
	assert.Contains(t, out, "Second two.")

	out, err = env.run("progress")
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "第 2 話")
}

func TestReadCommandOutOfRangeKeepsProgress(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("read", "alpha", "--chapter", "1")
	require.NoError(t, err)

	_, err = env.run("read", "alpha", "--chapter", "99")
	require.Error(t, err)

	out, err := env.run("progress")
	require.NoError(t, err)
	assert.Contains(t, out, "第 2 話")
	assert.NotContains(t, out, "第 1 話")
}

func TestReadCommandUnknownNovel(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run("read", "nope")
	assert.ErrorIs(t, err, sources.ErrNotFound)

	out, err := env.run("progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing read yet.")
}

func TestEpubCommand(t *testing.T) {
	env := newTestEnv(t)
	outDir := t.TempDir()

	out, err := env.run("epub", "solo", "--output", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "EPUB written to")

	matches, err := filepath.Glob(filepath.Join(outDir, "*.epub"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
