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

import "path/filepath"

// NewFileHandler builds a Handler that always serves filePath from
// filesystem, regardless of the request's URL path, with its MIME type
// guessed from filePath's extension.
func NewFileHandler(filesystem Filesystem, filePath string) *Handler {
	return NewFileHandlerWithMIME(filesystem, filePath, DefaultMIMEGuesser.TypeByPath(filePath))
}

// NewFileHandlerWithMIME is like NewFileHandler but uses an explicit MIME
// type instead of guessing one from filePath's extension.
func NewFileHandlerWithMIME(filesystem Filesystem, filePath, mimeType string) *Handler {
	return &Handler{
		filesystem:   newSingleFileFilesystem(filesystem, filePath),
		variant:      serveVariant{singleFile: true, mimeType: mimeType},
		bufChunkSize: defaultBufChunkSize,
		mimeGuesser:  DefaultMIMEGuesser,
	}
}

// NewDiskFileHandler is a convenience constructor serving a single file from
// the host filesystem. filePath may be relative to the working directory or
// absolute.
func NewDiskFileHandler(filePath string) *Handler {
	dir, file := filepath.Split(filePath)
	return NewFileHandler(NewDiskFilesystem(dir), file)
}
