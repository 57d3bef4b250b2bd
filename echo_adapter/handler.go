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

// Package echo_adapter wraps httpdir.Handler as an Echo-native handler.
package echo_adapter

import (
	"net/http"
	"strings"

	"github.com/blib/httpdir"
	"github.com/labstack/echo/v4"
)

// EchoHandler is merely an adapter for httpdir.Handler with the same API and
// an additional HandlerFunc method.
type EchoHandler httpdir.Handler

// NewHandler creates an EchoHandler serving a directory tree from filesystem.
func NewHandler(filesystem httpdir.Filesystem) *EchoHandler {
	return (*EchoHandler)(httpdir.NewHandler(filesystem))
}

// NewDiskHandler creates an EchoHandler serving the directory tree rooted at dir.
func NewDiskHandler(dir string) *EchoHandler {
	return (*EchoHandler)(httpdir.NewDiskHandler(dir))
}

// StripOff alters the handler to strip off a specified number of segments
// from the path before looking for the matching asset. For example, if
// StripOff(2) has been applied, the requested path "/a/b/c/d/doc.js" would
// be shortened to "c/d/doc.js". The returned handler is a new copy of the
// original one.
func (a EchoHandler) StripOff(unwantedPrefixSegments int) *EchoHandler {
	return (*EchoHandler)((*httpdir.Handler)(&a).StripOff(unwantedPrefixSegments))
}

// WithPrecompressedGzip enables lookup of ".gz" sibling files.
func (a EchoHandler) WithPrecompressedGzip() *EchoHandler {
	return (*EchoHandler)((*httpdir.Handler)(&a).WithPrecompressedGzip())
}

// WithPrecompressedBrotli enables lookup of ".br" sibling files.
func (a EchoHandler) WithPrecompressedBrotli() *EchoHandler {
	return (*EchoHandler)((*httpdir.Handler)(&a).WithPrecompressedBrotli())
}

// WithPrecompressedDeflate enables lookup of ".zz" sibling files.
func (a EchoHandler) WithPrecompressedDeflate() *EchoHandler {
	return (*EchoHandler)((*httpdir.Handler)(&a).WithPrecompressedDeflate())
}

// WithNotFound alters the handler so that not-found cases are passed to a
// specified handler, with its response status forced to 404. Without this,
// the default behaviour is the one provided in the net/http package.
func (a EchoHandler) WithNotFound(notFound http.Handler) *EchoHandler {
	return (*EchoHandler)((*httpdir.Handler)(&a).WithNotFoundService(notFound))
}

// HandlerFunc gets the asset handler as an Echo handler. The handler is
// registered using a catch-all path such as "/files/*". The same
// match-any pattern can be passed in, in which case it is stripped off
// the leading part of the URL path seen by the asset handler.
func (a *EchoHandler) HandlerFunc(path string) echo.HandlerFunc {
	trim := 0
	if path != "" {
		if strings.HasSuffix(path, "/*") {
			trim = len(path) - 2
		} else {
			panic(path + ": path must end /* or be blank")
		}
	}

	return func(c echo.Context) error {
		req := c.Request()
		req.URL.Path = req.URL.Path[trim:]
		(*httpdir.Handler)(a).ServeHTTP(c.Response(), c.Request())
		return nil
	}
}

// Register registers the asset handler with an Echo engine using the
// specified path to handle GET and HEAD requests. The path must end "/*".
func (a *EchoHandler) Register(e *echo.Echo, path string) {
	if !strings.HasSuffix(path, "/*") {
		panic(path + ": path must end /*")
	}
	h := a.HandlerFunc(path)
	e.GET(path, h)
	e.HEAD(path, h)
}
