package httpdir

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rickb777/expect"
)

func TestCopyChunked_wholeBody(t *testing.T) {
	var out bytes.Buffer
	err := copyChunked(context.Background(), &out, strings.NewReader("hello world"), 4, -1)
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.String(out.String()).ToBe(t, "hello world")
}

func TestCopyChunked_limited(t *testing.T) {
	var out bytes.Buffer
	err := copyChunked(context.Background(), &out, strings.NewReader("hello world"), 4, 5)
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.String(out.String()).ToBe(t, "hello")
}

func TestCopyChunked_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := copyChunked(ctx, &out, strings.NewReader("hello world"), 4, -1)
	expect.Error(err).ToHaveOccurred(t)
}

func TestCopyChunked_defaultsChunkSize(t *testing.T) {
	var out bytes.Buffer
	err := copyChunked(context.Background(), &out, strings.NewReader("x"), 0, -1)
	expect.Error(err).Not().ToHaveOccurred(t)
	expect.String(out.String()).ToBe(t, "x")
}
