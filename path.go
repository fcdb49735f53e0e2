package dirpatch

import (
	"path/filepath"
	"strings"
)

// NormPath normalizes a path by cleaning it and replacing backslashes with
// slashes.
func NormPath(path string) string {
	path = filepath.Clean(path)
	return strings.ReplaceAll(path, "\\", "/")
}

// JoinVirtual mounts name under the virtual prefix alias, inserting a single
// separator between them unless alias already ends with one.
func JoinVirtual(alias, name string) string {
	if strings.HasSuffix(alias, "/") {
		return alias + name
	}
	return alias + "/" + name
}
