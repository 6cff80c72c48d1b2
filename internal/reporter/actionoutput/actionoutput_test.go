package actionoutput

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDelimiter(t *testing.T, d string) {
	t.Helper()
	orig := newDelimiter
	newDelimiter = func() string { return d }
	t.Cleanup(func() { newDelimiter = orig })
}

func TestWrite_MultiLineValue(t *testing.T) {
	fixedDelimiter(t, "EOF_1")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "report-comment", "# Report\nline two"))
	assert.Equal(t, "report-comment<<EOF_1\n# Report\nline two\nEOF_1\n", buf.String())
}

func TestWrite_RejectsDelimiterInValue(t *testing.T) {
	fixedDelimiter(t, "EOF_1")

	var buf bytes.Buffer
	err := Write(&buf, "report-comment", "text\nEOF_1\nmore")
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestWrite_EmptyName(t *testing.T) {
	err := Write(&bytes.Buffer{}, " ", "value")
	require.Error(t, err)
}

func TestNewDelimiter_IsUnique(t *testing.T) {
	a, b := newDelimiter(), newDelimiter()
	assert.True(t, strings.HasPrefix(a, "ghadelimiter_"))
	assert.NotEqual(t, a, b)
}

func TestAppendFile_KeepsExistingOutputs(t *testing.T) {
	fixedDelimiter(t, "D")
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("other=1\n"), 0o644))

	require.NoError(t, AppendFile(path, "report-comment", "body"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "other=1\nreport-comment<<D\nbody\nD\n", string(content))
}

func TestAppendFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output")
	err := AppendFile(path, "report-comment", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open outputs file")
}

func TestPublish(t *testing.T) {
	fixedDelimiter(t, "D")

	t.Run("outside GitHub Actions", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		written, err := Publish("# Report")
		require.NoError(t, err)
		assert.False(t, written)
	})

	t.Run("inside GitHub Actions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		t.Setenv(EnvVar, path)

		written, err := Publish("# Report")
		require.NoError(t, err)
		assert.True(t, written)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "report-comment<<D\n# Report\nD\n", string(content))
	})
}
