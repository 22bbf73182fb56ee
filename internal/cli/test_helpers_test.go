package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// writeFiles creates a data dir holding the given files.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

// testGlobals points at dir and a config file that does not exist.
func testGlobals(dir string) *GlobalFlags {
	return &GlobalFlags{
		Config:  filepath.Join(dir, "no-config.yaml"),
		DataDir: dir,
		NoColor: true,
	}
}

// runCLI runs the CLI against dir and returns its stdout.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	full := append([]string{
		"--config", filepath.Join(dir, "no-config.yaml"),
		"--data-dir", dir,
		"--no-color",
	}, args...)

	var err error
	out := captureOutput(t, func() {
		err = RunWithArgs("test", full)
	})
	return out, err
}
