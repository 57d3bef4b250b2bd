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

import "net/http"

// notFoundWriter wraps a ResponseWriter so that whatever status the wrapped
// handler sets is overridden to 404 Not Found, while the handler's headers
// and body pass through unchanged. This backs WithNotFoundService, mirroring
// the behaviour of tower_http's SetStatus middleware in the original.
type notFoundWriter struct {
	w           http.ResponseWriter
	wroteHeader bool
}

func newNotFoundWriter(w http.ResponseWriter) *notFoundWriter {
	return &notFoundWriter{w: w}
}

var _ http.ResponseWriter = &notFoundWriter{}

func (ww *notFoundWriter) Header() http.Header {
	return ww.w.Header()
}

func (ww *notFoundWriter) WriteHeader(int) {
	if ww.wroteHeader {
		return
	}
	ww.wroteHeader = true
	ww.w.WriteHeader(http.StatusNotFound)
}

func (ww *notFoundWriter) Write(bytes []byte) (int, error) {
	if !ww.wroteHeader {
		ww.WriteHeader(http.StatusNotFound)
	}
	return ww.w.Write(bytes)
}

func (ww *notFoundWriter) Flush() {
	if f, ok := ww.w.(http.Flusher); ok {
		f.Flush()
	}
}
