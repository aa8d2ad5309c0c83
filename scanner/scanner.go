// Package scanner collects the files a lint run should visit.
package scanner

import (
	"os"
	"path/filepath"
)

// FileInfo describes one file selected for linting.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a directory tree and selects files by extension.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New creates a scanner rooted at rootDir. With no extensions every file is
// selected.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the tree and returns the selected files in walk order.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if s.isTargetFile(path) {
			files = append(files, FileInfo{
				Path: path,
				Size: info.Size(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
