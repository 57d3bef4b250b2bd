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
	"io"
	"time"
)

// Metadata describes a file as known to a Filesystem, independent of its content.
type Metadata struct {
	// ModTime is the file's last-modified time, or nil if unknown.
	ModTime *time.Time

	// Length is the file's size in bytes.
	Length uint64
}

// OpenedFile is a handle to a file's content, obtained from Filesystem.Open.
// Callers must Close it once they are done, typically via defer.
type OpenedFile interface {
	io.Reader
	io.Seeker
	io.Closer

	// Metadata returns the metadata of the opened file.
	Metadata(ctx context.Context) (Metadata, error)
}

// Filesystem is the capability a Handler needs from its storage backend: open a
// file for reading, test whether a path is a directory, and fetch metadata
// without opening the file's content.
//
// Paths passed to these methods are relative and forward-slash-delimited.
// Handler percent-decodes them but does not otherwise validate them, so they
// may contain ".." or other unsafe components; DiskFilesystem rejects such
// paths with fs.ErrNotExist, and EmbeddedFilesystem only ever matches the
// exact keys of its tree.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Filesystem interface {
	// Open returns a readable, seekable handle on the file at path.
	// It returns an error satisfying errors.Is(err, fs.ErrNotExist) if the
	// path does not exist or does not name a regular file, and an error
	// satisfying errors.Is(err, fs.ErrPermission) if access is denied.
	Open(ctx context.Context, path string) (OpenedFile, error)

	// IsDir reports whether path names a directory. It returns an error
	// satisfying errors.Is(err, fs.ErrNotExist) if path does not exist.
	IsDir(ctx context.Context, path string) (bool, error)

	// Metadata returns the metadata of the file at path, without opening it.
	Metadata(ctx context.Context, path string) (Metadata, error)
}
