package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelassist/internal/domain"
	"travelassist/internal/logger"
)

func TestLoadMissingDir(t *testing.T) {
	s := NewDirSource(filepath.Join(t.TempDir(), "nope"))
	_, err := s.Load()
	require.Error(t, err)
}

func TestLoadIgnoresNonPDF(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# readme"), 0o644))

	s := NewDirSource(dir)
	_, err := s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestLoadSkipsCorruptPDF(t *testing.T) {
	var warnings bytes.Buffer
	logger.SetOutput(&warnings)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	dir := t.TempDir()
	// A .pdf extension with garbage content must be skipped with a
	// warning, and with nothing else present the corpus ends up empty.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0o644))

	s := NewDirSource(dir)
	_, err := s.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
	assert.Contains(t, warnings.String(), "skipping")
}
