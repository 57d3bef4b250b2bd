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
	"io/fs"
	"strings"
	"time"
)

// EmbeddedFile is one entry of an EmbeddedFilesystem's immutable tree.
type EmbeddedFile struct {
	Data    []byte
	ModTime *time.Time
}

// EmbeddedFilesystem serves files from an immutable, in-memory tree,
// typically built at program startup from a //go:embed directive via
// NewEmbeddedFilesystemFromFS. Every method is safe for concurrent use
// because the tree is never mutated after construction.
type EmbeddedFilesystem struct {
	files map[string]EmbeddedFile
	dirs  map[string]bool
}

// NewEmbeddedFilesystem builds an EmbeddedFilesystem from an explicit map of
// forward-slash relative paths to file contents.
func NewEmbeddedFilesystem(files map[string]EmbeddedFile) *EmbeddedFilesystem {
	dirs := map[string]bool{"": true}
	for p := range files {
		markParents(dirs, p)
	}
	return &EmbeddedFilesystem{files: files, dirs: dirs}
}

// NewEmbeddedFilesystemFromFS walks source (typically an embed.FS) once,
// copying every regular file's bytes into the returned EmbeddedFilesystem.
// The embed.FS contract carries no useful modification times, so ModTime is
// left nil for every entry; callers needing conditional-request support over
// an embedded tree should build the map with NewEmbeddedFilesystem instead
// and supply explicit timestamps (e.g. the build time).
func NewEmbeddedFilesystemFromFS(source fs.FS) (*EmbeddedFilesystem, error) {
	files := make(map[string]EmbeddedFile)
	err := fs.WalkDir(source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(source, p)
		if err != nil {
			return err
		}
		files[p] = EmbeddedFile{Data: data}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewEmbeddedFilesystem(files), nil
}

func markParents(dirs map[string]bool, filePath string) {
	for {
		idx := strings.LastIndexByte(filePath, '/')
		if idx < 0 {
			return
		}
		filePath = filePath[:idx]
		if dirs[filePath] {
			return
		}
		dirs[filePath] = true
	}
}

func (e *EmbeddedFilesystem) normalize(p string) string {
	return strings.TrimPrefix(strings.TrimSuffix(p, "/"), "/")
}

func (e *EmbeddedFilesystem) Open(ctx context.Context, p string) (OpenedFile, error) {
	f, ok := e.files[e.normalize(p)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return &embeddedFileHandle{file: f}, nil
}

func (e *EmbeddedFilesystem) IsDir(ctx context.Context, p string) (bool, error) {
	norm := e.normalize(p)
	if e.dirs[norm] {
		return true, nil
	}
	if _, ok := e.files[norm]; ok {
		return false, nil
	}
	return false, fs.ErrNotExist
}

func (e *EmbeddedFilesystem) Metadata(ctx context.Context, p string) (Metadata, error) {
	f, ok := e.files[e.normalize(p)]
	if !ok {
		return Metadata{}, fs.ErrNotExist
	}
	return Metadata{ModTime: f.ModTime, Length: uint64(len(f.Data))}, nil
}

// embeddedFileHandle is a cursor-based reader over an EmbeddedFile's bytes,
// mirroring the seek semantics of a real file handle without touching disk.
type embeddedFileHandle struct {
	file   EmbeddedFile
	cursor int64
}

func (h *embeddedFileHandle) Read(p []byte) (int, error) {
	if h.cursor >= int64(len(h.file.Data)) {
		return 0, io.EOF
	}
	n := copy(p, h.file.Data[h.cursor:])
	h.cursor += int64(n)
	return n, nil
}

func (h *embeddedFileHandle) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = h.cursor + offset
	case io.SeekEnd:
		target = int64(len(h.file.Data)) + offset
	default:
		return 0, &fs.PathError{Op: "seek", Path: "", Err: fs.ErrInvalid}
	}
	if target < 0 || target > int64(len(h.file.Data)) {
		return 0, &fs.PathError{Op: "seek", Path: "", Err: fs.ErrInvalid}
	}
	h.cursor = target
	return target, nil
}

func (h *embeddedFileHandle) Close() error {
	return nil
}

func (h *embeddedFileHandle) Metadata(ctx context.Context) (Metadata, error) {
	return Metadata{ModTime: h.file.ModTime, Length: uint64(len(h.file.Data))}, nil
}
