package httpdir

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rickb777/expect"
	"github.com/spf13/afero"
)

func newTestHandlerFS(t *testing.T) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	write := func(p, body string) {
		expect.Error(afero.WriteFile(mem, p, []byte(body), 0644)).Not().ToHaveOccurred(t)
	}
	write("/site/index.html", "<html>home</html>")
	write("/site/hello.txt", "hello world")
	write("/site/hello.txt.gz", "gzipbytes")
	write("/site/hello.txt.br", "brbytes")
	expect.Error(mem.MkdirAll("/site/sub", 0755)).Not().ToHaveOccurred(t)
	write("/site/sub/index.html", "<html>sub</html>")
	return mem
}

func newTestHandler(t *testing.T) *Handler {
	mem := newTestHandlerFS(t)
	return NewHandler(NewDiskFilesystemFS(mem, "/site"))
}

func doRequest(h *Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_ServesPlainFile(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/hello.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.String(w.Body.String()).ToBe(t, "hello world")
	expect.String(w.Header().Get("Content-Type")).ToBe(t, "text/plain; charset=utf-8")
	expect.String(w.Header().Get("Accept-Ranges")).ToBe(t, "bytes")
}

func TestHandler_HeadHasNoBody(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodHead, "/hello.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.Number(w.Body.Len()).ToBe(t, 0)
	expect.String(w.Header().Get("Content-Length")).ToBe(t, "11")
}

func TestHandler_HeadMatchesGetHeaders(t *testing.T) {
	h := newTestHandler(t)
	get := doRequest(h, http.MethodGet, "/hello.txt", nil)
	head := doRequest(h, http.MethodHead, "/hello.txt", nil)

	expect.Number(get.Code).ToBe(t, head.Code)
	expect.String(get.Header().Get("Content-Type")).ToBe(t, head.Header().Get("Content-Type"))
	expect.String(get.Header().Get("Content-Length")).ToBe(t, head.Header().Get("Content-Length"))
	expect.String(get.Header().Get("Accept-Ranges")).ToBe(t, head.Header().Get("Accept-Ranges"))
	expect.Number(head.Body.Len()).ToBe(t, 0)
}

func TestHandler_DirectoryAppendsIndex(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/", nil)

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.String(w.Body.String()).ToBe(t, "<html>home</html>")
}

func TestHandler_DirectoryMissingSlashRedirects(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/sub", nil)

	expect.Number(w.Code).ToBe(t, http.StatusTemporaryRedirect)
	expect.String(w.Header().Get("Location")).ToBe(t, "/sub/")
}

func TestHandler_PathTraversalRejected(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/../../etc/passwd", nil)

	expect.Number(w.Code).ToBe(t, http.StatusNotFound)
}

func TestHandler_EncodedPathTraversalRejected(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/%2e%2e/%2e%2e/etc/passwd", nil)

	expect.Number(w.Code).ToBe(t, http.StatusNotFound)
}

func TestHandler_NotFound(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/missing.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusNotFound)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodPost, "/hello.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusMethodNotAllowed)
	expect.String(w.Header().Get("Allow")).ToBe(t, "GET,HEAD")
}

func TestHandler_PrecompressedBrotliPreferredOnTie(t *testing.T) {
	h := newTestHandler(t).WithPrecompressedGzip().WithPrecompressedBrotli()
	w := doRequest(h, http.MethodGet, "/hello.txt", map[string]string{"Accept-Encoding": "gzip, br"})

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.String(w.Header().Get("Content-Encoding")).ToBe(t, "br")
	expect.String(w.Body.String()).ToBe(t, "brbytes")
}

func TestHandler_PrecompressedNotOfferedWithoutPolicy(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/hello.txt", map[string]string{"Accept-Encoding": "gzip"})

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.String(w.Header().Get("Content-Encoding")).ToBe(t, "")
	expect.String(w.Body.String()).ToBe(t, "hello world")
}

func TestHandler_RangeRequest(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/hello.txt", map[string]string{"Range": "bytes=0-4"})

	expect.Number(w.Code).ToBe(t, http.StatusPartialContent)
	expect.String(w.Body.String()).ToBe(t, "hello")
	expect.String(w.Header().Get("Content-Range")).ToBe(t, "bytes 0-4/11")
	expect.String(w.Header().Get("Content-Length")).ToBe(t, "5")
}

func TestHandler_RangeUnsatisfiable(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/hello.txt", map[string]string{"Range": "bytes=1000-2000"})

	expect.Number(w.Code).ToBe(t, http.StatusRequestedRangeNotSatisfiable)
	expect.String(w.Header().Get("Content-Range")).ToBe(t, "bytes */11")
}

func TestHandler_MultiRangeNotSupported(t *testing.T) {
	h := newTestHandler(t)
	w := doRequest(h, http.MethodGet, "/hello.txt", map[string]string{"Range": "bytes=0-1,3-4"})

	expect.Number(w.Code).ToBe(t, http.StatusRequestedRangeNotSatisfiable)
}

func TestHandler_IfModifiedSinceNotModified(t *testing.T) {
	h := newTestHandler(t)
	future := time.Now().Add(24 * time.Hour).UTC().Format(http.TimeFormat)
	w := doRequest(h, http.MethodGet, "/hello.txt", map[string]string{"If-Modified-Since": future})

	expect.Number(w.Code).ToBe(t, http.StatusNotModified)
}

func TestHandler_IfUnmodifiedSincePreconditionFailed(t *testing.T) {
	h := newTestHandler(t)
	past := time.Now().Add(-24 * time.Hour).UTC().Format(http.TimeFormat)
	w := doRequest(h, http.MethodGet, "/hello.txt", map[string]string{"If-Unmodified-Since": past})

	expect.Number(w.Code).ToBe(t, http.StatusPreconditionFailed)
}

func TestHandler_StripOff(t *testing.T) {
	h := newTestHandler(t).StripOff(2)
	w := doRequest(h, http.MethodGet, "/a/b/hello.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusOK)
	expect.String(w.Body.String()).ToBe(t, "hello world")
}

func TestHandler_WithFallback(t *testing.T) {
	fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := newTestHandler(t).WithFallback(fallback)
	w := doRequest(h, http.MethodGet, "/missing.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusTeapot)
}

func TestHandler_WithNotFoundServiceForcesStatus(t *testing.T) {
	fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("spa shell"))
	})
	h := newTestHandler(t).WithNotFoundService(fallback)
	w := doRequest(h, http.MethodGet, "/missing.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusNotFound)
	expect.String(w.Body.String()).ToBe(t, "spa shell")
}

func TestHandler_CallFallbackOnMethodNotAllowed(t *testing.T) {
	fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := newTestHandler(t).WithFallback(fallback).WithCallFallbackOnMethodNotAllowed(true)
	w := doRequest(h, http.MethodPost, "/hello.txt", nil)

	expect.Number(w.Code).ToBe(t, http.StatusNoContent)
}

func TestHandler_AppendIndexHTMLDisabled(t *testing.T) {
	h := newTestHandler(t).WithAppendIndexHTML(false)
	w := doRequest(h, http.MethodGet, "/", nil)

	expect.Number(w.Code).ToBe(t, http.StatusNotFound)
}
