package testutils

import (
	"github.com/mandelsoft/vfs/pkg/composefs"
	"github.com/mandelsoft/vfs/pkg/layerfs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/projectionfs"
	"github.com/mandelsoft/vfs/pkg/readonlyfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem provides a file system showing the given directory of
// the OS file system under the same path. Modifications are kept in a
// temporary layer, unless readonly is set. All other paths are
// backed by a temporary file system.
func TestFileSystem(path string, readonly bool) (vfs.FileSystem, error) {
	tmpfs, err := osfs.NewTempFileSystem()
	if err != nil {
		return nil, err
	}
	defer func() {
		if tmpfs != nil {
			vfs.Cleanup(tmpfs)
		}
	}()

	err = tmpfs.MkdirAll(path, 0o700)
	if err != nil {
		return nil, err
	}
	data, err := overlay(tmpfs, path, readonly)
	if err != nil {
		return nil, err
	}

	fs := composefs.New(tmpfs, "/tmp")
	err = fs.Mount(path, data)
	if err != nil {
		return nil, err
	}
	tmpfs = nil
	return fs, nil
}

func overlay(tmpfs vfs.FileSystem, path string, readonly bool) (vfs.FileSystem, error) {
	base, err := projectionfs.New(osfs.OsFs, path)
	if err != nil {
		return nil, err
	}
	if readonly {
		return readonlyfs.New(base), nil
	}
	layer, err := projectionfs.New(tmpfs, path)
	if err != nil {
		return nil, err
	}
	return layerfs.New(layer, base), nil
}
