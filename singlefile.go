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

import "context"

// singleFileFilesystem wraps another Filesystem and ignores whatever path a
// caller passes, always serving the one file it was configured with. This is
// how a single-file Handler (see servefile.go) reuses the whole open-file
// pipeline without a directory tree.
type singleFileFilesystem struct {
	inner    Filesystem
	filePath string
}

func newSingleFileFilesystem(inner Filesystem, filePath string) *singleFileFilesystem {
	return &singleFileFilesystem{inner: inner, filePath: filePath}
}

func (s *singleFileFilesystem) Open(ctx context.Context, _ string) (OpenedFile, error) {
	return s.inner.Open(ctx, s.filePath)
}

func (s *singleFileFilesystem) IsDir(ctx context.Context, _ string) (bool, error) {
	return s.inner.IsDir(ctx, s.filePath)
}

func (s *singleFileFilesystem) Metadata(ctx context.Context, _ string) (Metadata, error) {
	return s.inner.Metadata(ctx, s.filePath)
}
