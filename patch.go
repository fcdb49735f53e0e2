// Package dirpatch models single-file change records for directory
// synchronization. A Patch says "create this file" or "delete this file",
// referring to a File item each time, and carries the virtual path at which
// the file appears in a target namespace.
package dirpatch

import (
	"fmt"
	"strings"
)

// Op is the kind of change a Patch describes.
type Op string

const (
	OpCreate Op = "create"
	OpDelete Op = "delete"
)

// Patch is one directory change over one file. It pairs the file with the
// directory path it was scanned from and the virtual path the file takes in
// the target namespace. A Patch is immutable after construction except for
// its lazily computed content digest.
type Patch struct {
	path   string // directory path the patch was generated from
	vpath  string // virtual path in the target namespace
	file   *File  // owned clone of the file the patch refers to
	op     Op
	digest string // hex SHA-1 of file content, cached once computed (create only)
}

// New builds a Patch for file under path, mounted in the virtual namespace at
// alias. The patch keeps its own clone of file, so the caller's instance can
// be modified or dropped independently afterwards.
//
// The file's name relative to path must not begin with a separator and alias
// must be non-empty; both indicate a broken caller precondition and panic.
func New(path string, file *File, op Op, alias string) *Patch {
	if alias == "" {
		panic("dirpatch: empty alias")
	}
	name := file.NameRelativeTo(path)
	if strings.HasPrefix(name, "/") {
		panic(fmt.Sprintf("dirpatch: file %q is not under %q", file.Path(), path))
	}
	return &Patch{
		path:  path,
		vpath: JoinVirtual(alias, name),
		file:  file.Clone(),
		op:    op,
	}
}

// Clone returns an independent copy of the patch. The cached digest, if any,
// is copied verbatim; cloning never computes or recomputes a digest.
func (p *Patch) Clone() *Patch {
	return &Patch{
		path:   p.path,
		vpath:  p.vpath,
		file:   p.file.Clone(),
		op:     p.op,
		digest: p.digest,
	}
}

// Path returns the directory path the patch was generated from.
func (p *Patch) Path() string {
	return p.path
}

// File returns the patch's file item. The patch keeps ownership.
func (p *Patch) File() *File {
	return p.file
}

// Op returns the operation.
func (p *Patch) Op() Op {
	return p.op
}

// VirtualPath returns the file's path in the target namespace.
func (p *Patch) VirtualPath() string {
	return p.vpath
}

// Digest returns the cached content digest, or "" if none has been computed.
// Delete patches never carry a digest.
func (p *Patch) Digest() string {
	return p.digest
}

// EnsureDigest computes and caches the file's content digest. It applies only
// to create patches with no digest cached yet; otherwise it is a no-op. The
// cached value is kept even if the file changes on disk afterwards.
func (p *Patch) EnsureDigest() error {
	if p.op != OpCreate || p.digest != "" {
		return nil
	}
	digest, err := p.file.Digest()
	if err != nil {
		return fmt.Errorf("digest %s: %w", p.file.Path(), err)
	}
	p.digest = digest
	return nil
}
