package files

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/contre95/mediastore/src/media"
)

// FileStore is the filesystem implementation of media.Store.
type FileStore struct {
	root func() (string, error)
}

var _ media.Store = (*FileStore)(nil)

// NewFileStore creates a store rooted at the directory yielded by root.
// The resolver is called at most once, on the first operation.
func NewFileStore(root media.RootResolver) *FileStore {
	return &FileStore{root: sync.OnceValues(root)}
}

// Import copies sourcePath to <root>/<category>/<filename>, replacing any
// file already there, and returns "category/filename".
func (s *FileStore) Import(ctx context.Context, sourcePath string, category media.Category) (string, error) {
	if err := category.Validate(); err != nil {
		return "", err
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", media.ErrSourceNotFound, sourcePath)
	}

	filename, err := sourceFilename(sourcePath)
	if err != nil {
		return "", err
	}

	root, err := s.root()
	if err != nil {
		return "", err
	}

	targetDir := filepath.Join(root, string(category))
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create directory: %w", media.ErrStorageIO, err)
	}

	targetPath := filepath.Join(targetDir, filename)
	if target, err := os.Stat(targetPath); err == nil && os.SameFile(info, target) {
		slog.DebugContext(ctx, "Source is already the managed file, skipping copy", "path", targetPath)
		return relativePath(string(category), filename), nil
	}

	if err := copyFile(sourcePath, targetPath); err != nil {
		slog.ErrorContext(ctx, "Failed to copy file", "source", sourcePath, "target", targetPath, "error", err)
		return "", fmt.Errorf("%w: failed to copy file: %w", media.ErrStorageIO, err)
	}

	slog.DebugContext(ctx, "File imported", "source", sourcePath, "target", targetPath)
	return relativePath(string(category), filename), nil
}

// Resolve returns the absolute path of <root>/<category>/<filename>.
func (s *FileStore) Resolve(ctx context.Context, category, filename string) (string, error) {
	path, err := s.managedPath(category, filename)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s/%s", media.ErrFileNotFound, category, filename)
	}
	return path, nil
}

// Base returns the media root after making sure it exists.
func (s *FileStore) Base(ctx context.Context) (string, error) {
	root, err := s.root()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create media directory: %w", media.ErrStorageIO, err)
	}
	return root, nil
}

// List returns the plain files directly inside <root>/<category>.
func (s *FileStore) List(ctx context.Context, category string) ([]string, error) {
	root, err := s.root()
	if err != nil {
		return nil, err
	}

	files := []string{}
	if !isComponent(category) {
		return files, nil
	}

	dir := filepath.Join(root, category)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return files, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read directory: %w", media.ErrStorageIO, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			slog.DebugContext(ctx, "Skipping entry with undecodable name", "dir", dir)
			continue
		}
		if isRegular(dir, entry) {
			files = append(files, name)
		}
	}
	return files, nil
}

// Delete removes <root>/<category>/<filename>. Directories are never removed.
func (s *FileStore) Delete(ctx context.Context, category, filename string) error {
	path, err := s.managedPath(category, filename)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s/%s", media.ErrFileNotFound, category, filename)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: failed to delete file: %s is a directory", media.ErrStorageIO, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: failed to delete file: %w", media.ErrStorageIO, err)
	}
	slog.DebugContext(ctx, "File deleted", "path", path)
	return nil
}

// managedPath joins category and filename under the root. Components that
// would leave the category directory cannot name a managed file.
func (s *FileStore) managedPath(category, filename string) (string, error) {
	root, err := s.root()
	if err != nil {
		return "", err
	}
	if !isComponent(category) || !isComponent(filename) {
		return "", fmt.Errorf("%w: %s/%s", media.ErrFileNotFound, category, filename)
	}
	return filepath.Join(root, category, filename), nil
}

// sourceFilename returns the final component of path.
func sourceFilename(path string) (string, error) {
	name := filepath.Base(filepath.Clean(path))
	if !isComponent(name) {
		return "", fmt.Errorf("%w: %q has no file name", media.ErrInvalidFilename, path)
	}
	return name, nil
}

// isComponent reports whether name is a single path component on this OS.
// A backslash is an ordinary character outside Windows.
func isComponent(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return false
	}
	return filepath.IsLocal(name)
}

// isRegular reports whether entry is a regular file, following symlinks.
func isRegular(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func relativePath(category, filename string) string {
	return category + "/" + filename
}
