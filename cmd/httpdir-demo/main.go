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

// Command httpdir-demo runs a webserver that serves a directory tree. The
// purpose is mostly to show by example how to use a Handler. It supports
// both HTTP and HTTPS, and optional gzip/brotli precompressed lookup.
package main

import (
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/blib/httpdir"
)

var path = flag.String("path", ".", "directory for the files to be served")
var cert = flag.String("cert", "", "file containing the certificate (optional)")
var key = flag.String("key", "", "file containing the private key (optional)")
var port = flag.Int("port", 8080, "TCP port to listen on")
var gzip = flag.Bool("gzip", false, "look for precompressed .gz siblings")
var brotli = flag.Bool("brotli", false, "look for precompressed .br siblings")
var verbose = flag.Bool("v", false, "enable verbose messages")

func main() {
	flag.Parse()

	if *verbose {
		httpdir.Debugf = log.Printf
	}

	if (*cert != "" && *key == "") || (*cert == "" && *key != "") {
		log.Fatal("Both certificate file (-cert) and private key file (-key) are required.")
	}

	h := httpdir.NewDiskHandler(*path)
	if *gzip {
		h = h.WithPrecompressedGzip()
	}
	if *brotli {
		h = h.WithPrecompressedBrotli()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h,
	}

	if *cert != "" {
		srv.TLSConfig = &tls.Config{
			MinVersion:       tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
			CipherSuites: []uint16{
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_AES_256_GCM_SHA384,
			},
		}
		log.Printf("Access the server via: https://localhost:%d/", *port)
		log.Fatal(srv.ListenAndServeTLS(*cert, *key))
	} else {
		log.Printf("Access the server via: http://localhost:%d/", *port)
		log.Fatal(srv.ListenAndServe())
	}
}
