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
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	rpath "github.com/rickb777/path"
)

// Debugf is called with verbose request-tracing messages if non-nil. It is
// nil (silent) by default; set it to e.g. log.Printf to enable tracing.
var Debugf func(format string, args ...any)

func debugf(format string, args ...any) {
	if Debugf != nil {
		Debugf(format, args...)
	}
}

const defaultBufChunkSize = 65536

// Handler serves files from a Filesystem over HTTP, implementing the core
// static-file semantics: conditional requests, byte ranges, precompressed
// encoding negotiation, directory index resolution, and HEAD/GET handling.
// A Handler is immutable once built by its constructors and With* methods
// (each returns a modified copy), so a *Handler is safe to share across
// goroutines and to register with multiple routes.
type Handler struct {
	filesystem Filesystem
	variant    serveVariant

	bufChunkSize                  int
	precompressed                  PrecompressedPolicy
	fallback                       http.Handler
	fallbackForcesNotFound         bool
	callFallbackOnMethodNotAllowed bool
	mimeGuesser                    MIMEGuesser
	unwantedPrefixSegments         int
}

// NewHandler creates a Handler serving a directory tree from filesystem,
// with index.html appended to directory requests by default.
func NewHandler(filesystem Filesystem) *Handler {
	return &Handler{
		filesystem:   filesystem,
		variant:      serveVariant{appendIndexHTML: true},
		bufChunkSize: defaultBufChunkSize,
		mimeGuesser:  DefaultMIMEGuesser,
	}
}

// NewDiskHandler is a convenience constructor serving the directory tree
// rooted at dir from the host filesystem.
func NewDiskHandler(dir string) *Handler {
	return NewHandler(NewDiskFilesystem(dir))
}

func (h *Handler) clone() *Handler {
	c := *h
	return &c
}

// WithBufChunkSize sets the read/write chunk size used when streaming file
// bodies. The default is 64KiB.
func (h *Handler) WithBufChunkSize(n int) *Handler {
	c := h.clone()
	c.bufChunkSize = n
	return c
}

// WithPrecompressedGzip enables lookup of ".gz" sibling files.
func (h *Handler) WithPrecompressedGzip() *Handler {
	c := h.clone()
	c.precompressed.Gzip = true
	return c
}

// WithPrecompressedBrotli enables lookup of ".br" sibling files.
func (h *Handler) WithPrecompressedBrotli() *Handler {
	c := h.clone()
	c.precompressed.Brotli = true
	return c
}

// WithPrecompressedDeflate enables lookup of ".zz" sibling files.
func (h *Handler) WithPrecompressedDeflate() *Handler {
	c := h.clone()
	c.precompressed.Deflate = true
	return c
}

// WithAppendIndexHTML controls whether a directory request appends
// index.html (true, the default) or yields 404 Not Found (false). It has no
// effect on a single-file Handler.
func (h *Handler) WithAppendIndexHTML(appendHTML bool) *Handler {
	c := h.clone()
	c.variant.appendIndexHTML = appendHTML
	return c
}

// WithFallback sets a handler invoked whenever the primary lookup yields
// file-not-found or permission-denied. The fallback's response status is
// used as-is.
func (h *Handler) WithFallback(fallback http.Handler) *Handler {
	c := h.clone()
	c.fallback = fallback
	c.fallbackForcesNotFound = false
	return c
}

// WithNotFoundService sets a handler invoked on file-not-found or
// permission-denied, whose response status is always overridden to 404.
// This is the common pattern behind single-page-application fallbacks.
func (h *Handler) WithNotFoundService(fallback http.Handler) *Handler {
	c := h.clone()
	c.fallback = fallback
	c.fallbackForcesNotFound = true
	return c
}

// WithCallFallbackOnMethodNotAllowed controls whether a request using a
// method other than GET/HEAD is forwarded to the fallback (true) or
// answered directly with 405 Method Not Allowed (false, the default).
func (h *Handler) WithCallFallbackOnMethodNotAllowed(call bool) *Handler {
	c := h.clone()
	c.callFallbackOnMethodNotAllowed = call
	return c
}

// WithMIMEGuesser overrides the strategy used to guess a Content-Type from
// a file's path. The default uses the standard library's mime package.
func (h *Handler) WithMIMEGuesser(guesser MIMEGuesser) *Handler {
	c := h.clone()
	c.mimeGuesser = guesser
	return c
}

// StripOff drops the first n slash-delimited segments of the request path
// before resolving it against the filesystem, e.g. so a cache-busting
// segment can be embedded in the URL without existing on disk.
func (h *Handler) StripOff(n int) *Handler {
	c := h.clone()
	c.unwantedPrefixSegments = n
	return c
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		if h.callFallbackOnMethodNotAllowed && h.fallback != nil {
			h.callFallback(w, r)
			return
		}
		w.Header().Set("Allow", "GET,HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	trimmedPath := strings.TrimPrefix(r.URL.Path, "/")
	if h.unwantedPrefixSegments > 0 {
		trimmedPath = rpath.Drop(trimmedPath, h.unwantedPrefixSegments)
	}

	decodedPath, err := url.PathUnescape(trimmedPath)
	if err != nil {
		debugf("httpdir: path decode failed for %q: %v", trimmedPath, err)
		h.respondNotFound(w, r)
		return
	}

	rangeHeader := r.Header.Get("Range")
	negotiated := negotiateEncodings(r.Header.Get("Accept-Encoding"), h.precompressed)

	out, err := openFile(
		r.Context(),
		h.filesystem,
		h.variant,
		decodedPath,
		r.URL.Path,
		r.URL.RawQuery,
		r.Method,
		r.Header.Get("If-Unmodified-Since"),
		r.Header.Get("If-Modified-Since"),
		rangeHeader,
		negotiated,
		h.mimeGuesser,
		h.bufChunkSize,
	)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			h.respondNotFound(w, r)
			return
		}
		debugf("httpdir: internal error serving %q: %v", decodedPath, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch out.kind {
	case outcomeFileOpened:
		if out.file != nil {
			defer out.file.Close()
		}
		writeFileResponse(w, r, out)

	case outcomeRedirect:
		w.Header().Set("Location", out.location)
		w.WriteHeader(http.StatusTemporaryRedirect)

	case outcomeFileNotFound:
		h.respondNotFound(w, r)

	case outcomePreconditionFailed:
		w.WriteHeader(http.StatusPreconditionFailed)

	case outcomeNotModified:
		w.WriteHeader(http.StatusNotModified)
	}
}

func (h *Handler) respondNotFound(w http.ResponseWriter, r *http.Request) {
	if h.fallback != nil {
		h.callFallback(w, r)
		return
	}
	http.NotFound(w, r)
}

func (h *Handler) callFallback(w http.ResponseWriter, r *http.Request) {
	if h.fallbackForcesNotFound {
		h.fallback.ServeHTTP(newNotFoundWriter(w), r)
		return
	}
	h.fallback.ServeHTTP(w, r)
}

// writeFileResponse renders an outcomeFileOpened result: headers, status,
// and (for GET) a streamed body.
func writeFileResponse(w http.ResponseWriter, r *http.Request, out openFileOutput) {
	header := w.Header()
	header.Set("Content-Type", out.mimeType)
	header.Set("Accept-Ranges", "bytes")
	if out.encoding != EncodingIdentity {
		header.Set("Content-Encoding", out.encoding.token())
	}
	if lm := formatLastModified(out.lastModified); lm != "" {
		header.Set("Last-Modified", lm)
	}

	size := out.meta.Length

	switch {
	case out.rangeErr != nil:
		header.Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)

	case len(out.ranges) > 1:
		header.Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		_, _ = w.Write([]byte("Cannot serve multipart range requests"))

	case len(out.ranges) == 1:
		rg := out.ranges[0]
		rangeSize := rg.End - rg.Start + 1
		header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", rg.Start, rg.End, size))
		header.Set("Content-Length", strconv.FormatUint(rangeSize, 10))
		w.WriteHeader(http.StatusPartialContent)
		if out.file != nil {
			_ = copyChunked(r.Context(), w, out.file, out.chunkSize, int64(rangeSize))
		}

	default:
		header.Set("Content-Length", strconv.FormatUint(size, 10))
		if out.file != nil {
			_ = copyChunked(r.Context(), w, out.file, out.chunkSize, -1)
		}
	}
}
