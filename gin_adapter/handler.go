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

// Package gin_adapter wraps httpdir.Handler as a Gin-native handler.
package gin_adapter

import (
	"net/http"

	"github.com/blib/httpdir"
	"github.com/gin-gonic/gin"
)

// GinHandler is merely an adapter for httpdir.Handler with the same API and
// an additional HandlerFunc method.
type GinHandler httpdir.Handler

// NewHandler creates a GinHandler serving a directory tree from filesystem.
func NewHandler(filesystem httpdir.Filesystem) *GinHandler {
	return (*GinHandler)(httpdir.NewHandler(filesystem))
}

// NewDiskHandler creates a GinHandler serving the directory tree rooted at dir.
func NewDiskHandler(dir string) *GinHandler {
	return (*GinHandler)(httpdir.NewDiskHandler(dir))
}

// StripOff alters the handler to strip off a specified number of segments
// from the path before looking for the matching asset. The returned handler
// is a new copy of the original one.
func (a GinHandler) StripOff(unwantedPrefixSegments int) *GinHandler {
	return (*GinHandler)((*httpdir.Handler)(&a).StripOff(unwantedPrefixSegments))
}

// WithPrecompressedGzip enables lookup of ".gz" sibling files.
func (a GinHandler) WithPrecompressedGzip() *GinHandler {
	return (*GinHandler)((*httpdir.Handler)(&a).WithPrecompressedGzip())
}

// WithPrecompressedBrotli enables lookup of ".br" sibling files.
func (a GinHandler) WithPrecompressedBrotli() *GinHandler {
	return (*GinHandler)((*httpdir.Handler)(&a).WithPrecompressedBrotli())
}

// WithPrecompressedDeflate enables lookup of ".zz" sibling files.
func (a GinHandler) WithPrecompressedDeflate() *GinHandler {
	return (*GinHandler)((*httpdir.Handler)(&a).WithPrecompressedDeflate())
}

// WithNotFound alters the handler so that not-found cases are passed to a
// specified handler, with its response status forced to 404. The returned
// handler is a new copy of the original one.
func (a GinHandler) WithNotFound(notFound http.Handler) *GinHandler {
	return (*GinHandler)((*httpdir.Handler)(&a).WithNotFoundService(notFound))
}

// HandlerFunc gets the asset handler as a Gin handler. The handler is
// registered using a catch-all path such as "/files/*filepath". The name
// of the catch-all parameter is passed in here (for example "filepath").
func (a *GinHandler) HandlerFunc(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request
		req.URL.Path = c.Param(paramName)
		(*httpdir.Handler)(a).ServeHTTP(c.Writer, c.Request)
	}
}

// Register registers the handler with a Gin engine for GET and HEAD
// requests at path, which must end with "/*filepath".
func (a *GinHandler) Register(e *gin.Engine, path string) {
	h := a.HandlerFunc("filepath")
	e.GET(path, h)
	e.HEAD(path, h)
}
