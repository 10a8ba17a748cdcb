// Package resource abstracts where style configurations come from.
//
// The style loader only needs a named byte stream; whether it is backed by
// a file, an embedded default, or an in-memory buffer is this package's
// concern:
//
//	cfg, err := style.Load(resource.BuiltIn(), resource.File("custom-styles.toml"))
//
// The resource name doubles as its identity in error messages and selects
// the decode format by extension (".toml" decodes as TOML, everything else
// as YAML/JSON).
package resource

import (
	"bytes"
	"io"
	"io/fs"
	"os"
)

// Resource is a named, openable byte stream holding a style configuration.
type Resource interface {
	// Name identifies the resource in error messages and selects the
	// decode format by file extension.
	Name() string
	// Open returns the resource's content as a stream.
	// The caller closes it.
	Open() (io.ReadCloser, error)
}

// File returns a resource backed by a file on disk.
func File(path string) Resource {
	return fileResource{path: path}
}

type fileResource struct {
	path string
}

func (r fileResource) Name() string { return r.path }

func (r fileResource) Open() (io.ReadCloser, error) {
	return os.Open(r.path)
}

// FS returns a resource read from a file system, such as an embed.FS.
func FS(fsys fs.FS, name string) Resource {
	return fsResource{fsys: fsys, name: name}
}

type fsResource struct {
	fsys fs.FS
	name string
}

func (r fsResource) Name() string { return r.name }

func (r fsResource) Open() (io.ReadCloser, error) {
	return r.fsys.Open(r.name)
}

// Bytes returns an in-memory resource. Useful for tests and for reloading
// a serialized configuration.
func Bytes(name string, data []byte) Resource {
	return bytesResource{name: name, data: data}
}

type bytesResource struct {
	name string
	data []byte
}

func (r bytesResource) Name() string { return r.name }

func (r bytesResource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(r.data)), nil
}
