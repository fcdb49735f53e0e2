package dirpatch

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File is a metadata snapshot of one regular file: its location plus the
// size, modification time and existence observed when the snapshot was taken.
// Content is never held in memory; Digest streams it on demand.
type File struct {
	path    string
	size    int64
	modTime time.Time
	exists  bool
}

// NewFile snapshots the file name under dir. A missing file is not an error:
// the snapshot records Exists() == false, so scanners can represent files
// that disappeared mid-walk.
func NewFile(dir, name string) *File {
	f := &File{path: filepath.Join(dir, name)}
	f.Refresh()
	return f
}

// Clone returns an independently owned copy of the snapshot.
func (f *File) Clone() *File {
	dup := *f
	return &dup
}

// Refresh re-stats the file and updates the cached size, modification time
// and existence. A path that is missing or a directory records Exists() ==
// false.
func (f *File) Refresh() {
	f.exists = false
	f.size = 0
	f.modTime = time.Time{}

	info, err := os.Stat(f.path)
	if err != nil || info.IsDir() {
		return
	}
	f.exists = true
	f.size = info.Size()
	f.modTime = info.ModTime()
}

// NameRelativeTo returns the file's path with the dir prefix stripped and
// separators normalized to "/". A file that does not live under dir yields
// its full normalized path; callers treat that as broken upstream input.
func (f *File) NameRelativeTo(dir string) string {
	path := NormPath(f.path)
	prefix := NormPath(dir)
	if prefix == "." {
		return path
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return path
	}
	return rest
}

// Digest streams the file's content through SHA-1 and returns the 40-char
// hex digest. The content is read at call time; a file that cannot be opened
// or read is a recoverable error.
func (f *File) Digest() (string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return "", fmt.Errorf("failed to open file '%s': %w", f.path, err)
	}
	defer file.Close()

	h := sha1.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", fmt.Errorf("failed to copy file content for hashing '%s': %w", f.path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Path returns the file's path as constructed from dir and name.
func (f *File) Path() string {
	return f.path
}

// Size returns the size recorded at the last Refresh.
func (f *File) Size() int64 {
	return f.size
}

// ModTime returns the modification time recorded at the last Refresh.
func (f *File) ModTime() time.Time {
	return f.modTime
}

// Exists reports whether the file was a regular file at the last Refresh.
func (f *File) Exists() bool {
	return f.exists
}
