// MIT License
//
// Copyright (c) 2016 Rick Beton
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package httpdir

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// DiskFilesystem serves files from a directory tree on an afero.Fs, rooted at
// base. It validates every path component before touching the underlying
// filesystem, rejecting anything that could escape base.
type DiskFilesystem struct {
	fs   afero.Fs
	base string
}

// NewDiskFilesystem creates a DiskFilesystem rooted at base, using the host
// operating system's filesystem.
func NewDiskFilesystem(base string) *DiskFilesystem {
	return NewDiskFilesystemFS(afero.NewOsFs(), base)
}

// NewDiskFilesystemFS creates a DiskFilesystem rooted at base on a supplied
// afero.Fs, allowing tests to substitute afero.NewMemMapFs() or similar.
func NewDiskFilesystemFS(fileSystem afero.Fs, base string) *DiskFilesystem {
	return &DiskFilesystem{fs: fileSystem, base: base}
}

// buildAndValidatePath walks requestPath component by component, skipping
// empty and "." components and rejecting any component that is ".." or that
// itself contains a backslash or drive-letter-like colon (guards against
// inputs such as "foo/c:/bar" or "foo/..\\bar" smuggled past the caller's
// decoder).
func (d *DiskFilesystem) buildAndValidatePath(requestPath string) (string, bool) {
	resolved := d.base
	for _, comp := range strings.Split(requestPath, "/") {
		switch comp {
		case "", ".":
			continue
		case "..":
			return "", false
		default:
			if strings.ContainsAny(comp, `\:`) {
				return "", false
			}
			resolved = path.Join(resolved, comp)
		}
	}
	return resolved, true
}

func (d *DiskFilesystem) Open(ctx context.Context, requestPath string) (OpenedFile, error) {
	resolved, ok := d.buildAndValidatePath(requestPath)
	if !ok {
		return nil, fs.ErrNotExist
	}
	f, err := d.fs.Open(resolved)
	if err != nil {
		return nil, translateAferoError(err)
	}
	if info, statErr := f.Stat(); statErr == nil && info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return &diskFile{file: f}, nil
}

func (d *DiskFilesystem) IsDir(ctx context.Context, requestPath string) (bool, error) {
	resolved, ok := d.buildAndValidatePath(requestPath)
	if !ok {
		return false, fs.ErrNotExist
	}
	info, err := d.fs.Stat(resolved)
	if err != nil {
		return false, translateAferoError(err)
	}
	return info.IsDir(), nil
}

func (d *DiskFilesystem) Metadata(ctx context.Context, requestPath string) (Metadata, error) {
	resolved, ok := d.buildAndValidatePath(requestPath)
	if !ok {
		return Metadata{}, fs.ErrNotExist
	}
	info, err := d.fs.Stat(resolved)
	if err != nil {
		return Metadata{}, translateAferoError(err)
	}
	return metadataFromFileInfo(info), nil
}

type diskFile struct {
	file afero.File
}

func (f *diskFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *diskFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *diskFile) Close() error {
	return f.file.Close()
}

func (f *diskFile) Metadata(ctx context.Context) (Metadata, error) {
	info, err := f.file.Stat()
	if err != nil {
		return Metadata{}, translateAferoError(err)
	}
	return metadataFromFileInfo(info), nil
}

func metadataFromFileInfo(info fs.FileInfo) Metadata {
	modTime := info.ModTime()
	var modPtr *time.Time
	if !modTime.IsZero() {
		modPtr = &modTime
	}
	return Metadata{ModTime: modPtr, Length: uint64(info.Size())}
}

// translateAferoError maps the errors afero.Fs implementations return into
// the io/fs sentinel errors the Filesystem contract promises.
func translateAferoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
		return fs.ErrNotExist
	}
	if errors.Is(err, fs.ErrPermission) || os.IsPermission(err) {
		return fs.ErrPermission
	}
	return err
}
