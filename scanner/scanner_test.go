package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "scanner-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	files := map[string]string{
		"file1.go":        "package main",
		"file2.txt":       "This is a text file",
		"subdir/file3.go": "package subdir",
	}

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		err := os.MkdirAll(filepath.Dir(fullPath), 0o755)
		require.NoError(t, err)
		err = os.WriteFile(fullPath, []byte(content), 0o644)
		require.NoError(t, err)
	}

	s := New(tempDir, ".go")
	scannedFiles, err := s.Scan()
	require.NoError(t, err)

	assert.Equal(t, 2, len(scannedFiles), "Should find 2 Go files")

	foundPaths := make(map[string]bool)
	for _, file := range scannedFiles {
		foundPaths[file.Path] = true
		assert.Greater(t, file.Size, int64(0), "File size should be greater than 0")
	}

	assert.True(t, foundPaths[filepath.Join(tempDir, "file1.go")])
	assert.True(t, foundPaths[filepath.Join(tempDir, "subdir/file3.go")])
	assert.False(t, foundPaths[filepath.Join(tempDir, "file2.txt")])
}

func TestScannerNoExtensions(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "scanner-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	err = os.WriteFile(filepath.Join(tempDir, "anything.md"), []byte("x"), 0o644)
	require.NoError(t, err)

	s := New(tempDir)
	scannedFiles, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, 1, len(scannedFiles))
}
