package rom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	data := []byte{0x60, 0x05, 0x00, 0x00}
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ch8")
	assert.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestLoad_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.ch8")
	assert.NoError(t, os.WriteFile(path, make([]byte, MaxProgramSize+1), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
}
