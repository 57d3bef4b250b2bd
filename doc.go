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

/*
Package httpdir serves a directory tree (or a single file) over HTTP,
implementing the core semantics of a static file server on top of a
pluggable Filesystem abstraction.

	h := httpdir.NewDiskHandler("./assets")

Handler is an http.Handler and can be used alongside your other handlers.

# Filesystem backends

A Handler does not touch the host filesystem directly; it talks to a
Filesystem, of which three implementations are provided: DiskFilesystem
(an afero.Fs-backed tree, normally the host OS), EmbeddedFilesystem (an
immutable in-memory tree, typically built from a //go:embed directive),
and the internal single-file wrapper used by NewFileHandler. Bring your
own by implementing the three-method Filesystem interface.

# Conditional Requests

If-Modified-Since and If-Unmodified-Since are evaluated against each
file's modification time, at whole-second resolution as the HTTP-date
wire format requires. A matching If-Modified-Since yields 304 Not
Modified; a failing If-Unmodified-Since yields 412 Precondition
Failed.

# Byte Ranges

A single satisfiable Range request yields 206 Partial Content with a
Content-Range header and a truncated body. A Range that cannot be
satisfied against the file's length yields 416 Range Not Satisfiable.
Multipart ranges (more than one byte-range-spec) are rejected with 416
rather than being served as multipart/byteranges, since that encoding
is rarely needed by callers of this package.

# Precompressed Content

Enabling WithPrecompressedGzip, WithPrecompressedBrotli or
WithPrecompressedDeflate makes the Handler look for a sibling file
with a .gz, .br or .zz suffix before falling back to the uncompressed
file, choosing among the encodings the client's Accept-Encoding header
allows by weight, with br preferred over gzip over deflate on a tie.
Nothing is compressed on the fly: the precompressed siblings must
already exist in the Filesystem.

# Directory Handling

A request for a directory path missing its trailing slash is
redirected (307) to add one. A request for a directory path with its
trailing slash appends index.html by default; WithAppendIndexHTML(false)
turns this off and yields 404 instead.

# Path Stripping

StripOff discards a number of leading slash-delimited segments from
the request path before it is resolved against the Filesystem, e.g. so
a cache-busting segment can be embedded in a URL without existing on
disk:

	http://example.com/e3b1cf/css/style1.css

maps, with StripOff(1), to the Filesystem path css/style1.css.

# Fallback

WithFallback registers a handler invoked whenever the primary lookup
fails to find a file or is denied access to one; the fallback's own
response status is used unchanged. WithNotFoundService is the same but
forces the fallback's response status to 404, which is the usual shape
of a single-page-application catch-all.
*/
package httpdir
