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
	"io"
	"io/fs"
	"net/url"
	"strings"
	"time"
)

// outcomeKind tags the variant of an openFileOutput.
type outcomeKind int

const (
	outcomeFileOpened outcomeKind = iota
	outcomeRedirect
	outcomeFileNotFound
	outcomePreconditionFailed
	outcomeNotModified
)

// openFileOutput is the tagged result of the open-file pipeline. Only the
// fields relevant to kind are populated.
type openFileOutput struct {
	kind outcomeKind

	// outcomeFileOpened fields
	isHead       bool
	file         OpenedFile // non-nil only when !isHead
	meta         Metadata
	chunkSize    int
	mimeType     string
	encoding     Encoding
	ranges       []RangeSpec
	rangeErr     error
	lastModified *time.Time

	// outcomeRedirect field
	location string
}

// serveVariant selects how the pipeline resolves a request path into a file.
type serveVariant struct {
	singleFile      bool
	mimeType        string // used when singleFile
	appendIndexHTML bool   // used when !singleFile
}

// openFile runs the open-file pipeline: resolves directory redirects and
// index.html, negotiates a precompressed encoding, opens (or stats, for
// HEAD) the file, evaluates conditional headers, and parses any Range
// header. candidatePath is the already-decoded relative path, which is not
// validated here (the Filesystem rejects unsafe components); uriPath is the
// original request URI's path (used to detect a trailing slash and to build
// a redirect Location).
func openFile(
	ctx context.Context,
	filesystem Filesystem,
	variant serveVariant,
	candidatePath string,
	uriPath string,
	rawQuery string,
	method string,
	ifUnmodifiedSince, ifModifiedSince string,
	rangeHeader string,
	negotiatedEncodings []Encoding,
	mimeGuesser MIMEGuesser,
	bufChunkSize int,
) (openFileOutput, error) {
	var mimeType string

	if !variant.singleFile {
		if out, handled, err := maybeRedirectOrAppendIndex(ctx, filesystem, &candidatePath, uriPath, rawQuery, variant.appendIndexHTML); err != nil {
			return openFileOutput{}, err
		} else if handled {
			return out, nil
		}
		mimeType = mimeGuesser.TypeByPath(candidatePath)
	} else {
		mimeType = variant.mimeType
	}

	if method == "HEAD" {
		meta, encoding, err := metadataWithFallback(ctx, filesystem, candidatePath, negotiatedEncodings)
		if err != nil {
			return openFileOutput{}, err
		}
		if out, handled := checkModifiedHeaders(meta.ModTime, ifUnmodifiedSince, ifModifiedSince); handled {
			return out, nil
		}
		ranges, rangeErr := parseRangeHeader(rangeHeader, meta.Length)
		return openFileOutput{
			kind:         outcomeFileOpened,
			isHead:       true,
			meta:         meta,
			chunkSize:    bufChunkSize,
			mimeType:     mimeType,
			encoding:     encoding,
			ranges:       ranges,
			rangeErr:     rangeErr,
			lastModified: meta.ModTime,
		}, nil
	}

	file, encoding, err := openFileWithFallback(ctx, filesystem, candidatePath, negotiatedEncodings)
	if err != nil {
		return openFileOutput{}, err
	}
	meta, err := file.Metadata(ctx)
	if err != nil {
		file.Close()
		return openFileOutput{}, err
	}
	if out, handled := checkModifiedHeaders(meta.ModTime, ifUnmodifiedSince, ifModifiedSince); handled {
		file.Close()
		return out, nil
	}

	ranges, rangeErr := parseRangeHeader(rangeHeader, meta.Length)
	if rangeErr == nil && len(ranges) == 1 {
		if _, err := file.Seek(int64(ranges[0].Start), io.SeekStart); err != nil {
			file.Close()
			return openFileOutput{}, err
		}
	}

	return openFileOutput{
		kind:         outcomeFileOpened,
		isHead:       false,
		file:         file,
		meta:         meta,
		chunkSize:    bufChunkSize,
		mimeType:     mimeType,
		encoding:     encoding,
		ranges:       ranges,
		rangeErr:     rangeErr,
		lastModified: meta.ModTime,
	}, nil
}

// checkModifiedHeaders evaluates the conditional-request headers (raw
// header values; empty means absent) against modTime.
func checkModifiedHeaders(modTime *time.Time, ifUnmodifiedSince, ifModifiedSince string) (openFileOutput, bool) {
	switch evaluateConditional(ifUnmodifiedSince, ifModifiedSince, modTime) {
	case conditionalPreconditionFailed:
		return openFileOutput{kind: outcomePreconditionFailed}, true
	case conditionalNotModified:
		return openFileOutput{kind: outcomeNotModified}, true
	default:
		return openFileOutput{}, false
	}
}

// preferredEncoding picks the first (most preferred) remaining negotiated
// encoding, if any, and returns basePath with that encoding's suffix
// appended.
func preferredEncoding(basePath string, negotiated []Encoding) (string, Encoding, bool) {
	if len(negotiated) == 0 {
		return basePath, EncodingIdentity, false
	}
	enc := negotiated[0]
	return basePath + enc.suffix(), enc, true
}

// openFileWithFallback tries each negotiated encoding's precompressed
// sibling in turn, falling back to the uncompressed file once all
// candidates are exhausted or none were negotiated.
func openFileWithFallback(ctx context.Context, filesystem Filesystem, basePath string, negotiated []Encoding) (OpenedFile, Encoding, error) {
	remaining := append([]Encoding(nil), negotiated...)
	for {
		tryPath, enc, hasEncoding := preferredEncoding(basePath, remaining)
		file, err := filesystem.Open(ctx, tryPath)
		if err == nil {
			if !hasEncoding {
				return file, EncodingIdentity, nil
			}
			return file, enc, nil
		}
		if hasEncoding && errors.Is(err, fs.ErrNotExist) {
			remaining = removeEncoding(remaining, enc)
			continue
		}
		return nil, EncodingIdentity, err
	}
}

// metadataWithFallback mirrors openFileWithFallback for HEAD requests,
// which need only metadata, not an open handle.
func metadataWithFallback(ctx context.Context, filesystem Filesystem, basePath string, negotiated []Encoding) (Metadata, Encoding, error) {
	remaining := append([]Encoding(nil), negotiated...)
	for {
		tryPath, enc, hasEncoding := preferredEncoding(basePath, remaining)
		meta, err := filesystem.Metadata(ctx, tryPath)
		if err == nil {
			if !hasEncoding {
				return meta, EncodingIdentity, nil
			}
			return meta, enc, nil
		}
		if hasEncoding && errors.Is(err, fs.ErrNotExist) {
			remaining = removeEncoding(remaining, enc)
			continue
		}
		return Metadata{}, EncodingIdentity, err
	}
}

func removeEncoding(encodings []Encoding, remove Encoding) []Encoding {
	out := encodings[:0]
	for _, e := range encodings {
		if e != remove {
			out = append(out, e)
		}
	}
	return out
}

// maybeRedirectOrAppendIndex implements the directory-handling step of the
// pipeline: redirect to add a trailing slash, append index.html, or signal
// not-found for a directory with indexing disabled. The returned bool
// reports whether the pipeline should stop and return out immediately.
func maybeRedirectOrAppendIndex(ctx context.Context, filesystem Filesystem, candidatePath *string, uriPath, rawQuery string, appendIndexHTML bool) (openFileOutput, bool, error) {
	isDir, statErr := filesystem.IsDir(ctx, *candidatePath)
	if statErr != nil {
		isDir = false
	}

	if !strings.HasSuffix(uriPath, "/") {
		if isDir {
			return openFileOutput{kind: outcomeRedirect, location: appendSlash(uriPath, rawQuery)}, true, nil
		}
		return openFileOutput{}, false, nil
	}

	if isDir {
		if appendIndexHTML {
			*candidatePath = strings.TrimSuffix(*candidatePath, "/") + "/index.html"
			return openFileOutput{}, false, nil
		}
		return openFileOutput{kind: outcomeFileNotFound}, true, nil
	}

	return openFileOutput{}, false, nil
}

func appendSlash(uriPath, rawQuery string) string {
	u := &url.URL{Path: uriPath + "/", RawQuery: rawQuery}
	return u.String()
}
