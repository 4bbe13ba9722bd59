package platform

import (
	"io"
	"os"

	"github.com/metafates/gache"
	"github.com/spf13/afero"
)

var _ gache.FileSystem = GacheFs{}

// GacheFs stores gache files on an afero filesystem
type GacheFs struct {
	Fs afero.Fs
}

// OpenFile implements gache.FileSystem
func (g GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return g.Fs.OpenFile(name, flag, perm)
}

// MkdirAll implements gache.FileSystem
func (g GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return g.Fs.MkdirAll(path, perm)
}
