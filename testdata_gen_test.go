package httpdir

import (
	"bytes"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/rickb777/expect"
	"github.com/spf13/afero"
)

// buildPrecompressedFixture writes base plus its gzip and brotli encoded
// siblings into fsys at dir, the way a real asset pipeline would prepare a
// directory for WithPrecompressedGzip/WithPrecompressedBrotli. It exists so
// handler-level tests can exercise genuine compressed bytes rather than
// fixture files that merely carry a recognisable suffix.
func buildPrecompressedFixture(t *testing.T, fsys afero.Fs, dir, name string, content []byte) {
	t.Helper()

	expect.Error(afero.WriteFile(fsys, dir+"/"+name, content, 0644)).Not().ToHaveOccurred(t)

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(content)
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.Error(gw.Close()).Not().ToHaveOccurred(t)
	expect.Error(afero.WriteFile(fsys, dir+"/"+name+".gz", gz.Bytes(), 0644)).Not().ToHaveOccurred(t)

	var br bytes.Buffer
	bw := brotli.NewWriter(&br)
	_, err = bw.Write(content)
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.Error(bw.Close()).Not().ToHaveOccurred(t)
	expect.Error(afero.WriteFile(fsys, dir+"/"+name+".br", br.Bytes(), 0644)).Not().ToHaveOccurred(t)
}

func TestBuildPrecompressedFixture_roundTrips(t *testing.T) {
	mem := afero.NewMemMapFs()
	content := []byte("the quick brown fox jumps over the lazy dog")
	buildPrecompressedFixture(t, mem, "/site", "fox.txt", content)

	gzBytes, err := afero.ReadFile(mem, "/site/fox.txt.gz")
	expect.Error(err).Not().ToHaveOccurred(t)
	gr, err := gzip.NewReader(bytes.NewReader(gzBytes))
	expect.Error(err).Not().ToHaveOccurred(t)
	gotGzip, err := io.ReadAll(gr)
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.String(string(gotGzip)).ToBe(t, string(content))

	brBytes, err := afero.ReadFile(mem, "/site/fox.txt.br")
	expect.Error(err).Not().ToHaveOccurred(t)
	gotBrotli, err := io.ReadAll(brotli.NewReader(bytes.NewReader(brBytes)))
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.String(string(gotBrotli)).ToBe(t, string(content))
}

func TestHandler_servesGenuinelyCompressedPrecompressedSibling(t *testing.T) {
	mem := afero.NewMemMapFs()
	content := []byte("repeated repeated repeated repeated content for compression")
	buildPrecompressedFixture(t, mem, "/site", "data.txt", content)

	h := NewHandler(NewDiskFilesystemFS(mem, "/site")).WithPrecompressedGzip()
	w := doRequest(h, "GET", "/data.txt", map[string]string{"Accept-Encoding": "gzip"})

	expect.Number(w.Code).ToBe(t, 200)
	expect.String(w.Header().Get("Content-Encoding")).ToBe(t, "gzip")

	gr, err := gzip.NewReader(w.Body)
	expect.Error(err).Not().ToHaveOccurred(t)
	decoded, err := io.ReadAll(gr)
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.String(string(decoded)).ToBe(t, string(content))
}
