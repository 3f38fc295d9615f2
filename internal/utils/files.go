package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// ExtensionFilter selects regular files whose name ends with ext (".go", ".yaml")
func ExtensionFilter(ext string) FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		return filepath.Ext(info.Name()) == ext
	}
}

// ListFiles returns the immediate files of dir accepted by filter, in lexical order.
// Subdirectories are never entered. A missing directory yields no files and no error.
func ListFiles(dir string, filter FileFilter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if filter == nil || filter(path, entry) {
			files = append(files, path)
		}
	}
	return files, nil
}

// BaseNameWithoutExt strips the directory and the final extension from path
func BaseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
