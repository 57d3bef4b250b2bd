package httpdir

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rickb777/expect"
	"github.com/spf13/afero"
)

func TestNewFileHandler_servesFileRegardlessOfPath(t *testing.T) {
	mem := afero.NewMemMapFs()
	expect.Error(afero.WriteFile(mem, "/assets/app.js", []byte("console.log(1)"), 0644)).Not().ToHaveOccurred(t)

	h := NewFileHandler(NewDiskFilesystemFS(mem, "/assets"), "app.js")
	w := doRequest(h, http.MethodGet, "/whatever/path", nil)

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.String(w.Body.String()).ToBe(t, "console.log(1)")
	expect.String(w.Header().Get("Content-Type")).ToBe(t, "text/javascript; charset=utf-8")
}

func TestNewFileHandlerWithMIME_usesExplicitType(t *testing.T) {
	mem := afero.NewMemMapFs()
	expect.Error(afero.WriteFile(mem, "/assets/data", []byte("{}"), 0644)).Not().ToHaveOccurred(t)

	h := NewFileHandlerWithMIME(NewDiskFilesystemFS(mem, "/assets"), "data", "application/json")
	w := doRequest(h, http.MethodGet, "/", nil)

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.String(w.Header().Get("Content-Type")).ToBe(t, "application/json")
}

func TestNewFileHandler_supportsRange(t *testing.T) {
	mem := afero.NewMemMapFs()
	expect.Error(afero.WriteFile(mem, "/assets/big.bin", []byte("0123456789"), 0644)).Not().ToHaveOccurred(t)

	h := NewFileHandler(NewDiskFilesystemFS(mem, "/assets"), "big.bin")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Range", "bytes=2-4")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	expect.Number(w.Code).ToBe(t, http.StatusPartialContent)
	expect.String(w.Body.String()).ToBe(t, "234")
}
