package fs

import "io"

type File interface {
	io.Reader
	io.Writer
	io.Closer
}

// FileSystem is the host filesystem as seen by the importer, exporter and script
// runner. The shell itself only ever touches the virtual filesystem.
type FileSystem interface {
	Open(name string) (File, error)
	WriteFile(name string, data []byte) error
	Exists(name string) (bool, error)
}
