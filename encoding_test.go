package httpdir

import (
	"testing"

	"github.com/rickb777/expect"
)

func TestNegotiateEncodings_empty(t *testing.T) {
	got := negotiateEncodings("", PrecompressedPolicy{Gzip: true, Brotli: true, Deflate: true})
	expect.Slice(got).ToHaveLength(t, 0)
}

func TestNegotiateEncodings_policyDisallows(t *testing.T) {
	got := negotiateEncodings("br, gzip", PrecompressedPolicy{Gzip: true})
	expect.Slice(got).ToBe(t, []Encoding{EncodingGzip})
}

func TestNegotiateEncodings_tieBreakOrder(t *testing.T) {
	policy := PrecompressedPolicy{Gzip: true, Brotli: true, Deflate: true}
	got := negotiateEncodings("deflate, gzip, br", policy)
	expect.Slice(got).ToBe(t, []Encoding{EncodingBrotli, EncodingGzip, EncodingDeflate})
}

func TestNegotiateEncodings_qValueOrdering(t *testing.T) {
	policy := PrecompressedPolicy{Gzip: true, Brotli: true}
	got := negotiateEncodings("gzip;q=1.0, br;q=0.5", policy)
	expect.Slice(got).ToBe(t, []Encoding{EncodingGzip, EncodingBrotli})
}

func TestNegotiateEncodings_zeroQValueExcluded(t *testing.T) {
	policy := PrecompressedPolicy{Gzip: true, Brotli: true}
	got := negotiateEncodings("gzip;q=0, br;q=0.8", policy)
	expect.Slice(got).ToBe(t, []Encoding{EncodingBrotli})
}

func TestNegotiateEncodings_identityAndWildcardIgnored(t *testing.T) {
	policy := PrecompressedPolicy{Gzip: true}
	got := negotiateEncodings("identity, *;q=0.9, gzip", policy)
	expect.Slice(got).ToBe(t, []Encoding{EncodingGzip})
}

func TestParseQValue(t *testing.T) {
	v, ok := parseQValue("")
	expect.Any(ok).ToBe(t, true)
	expect.Number(int(v)).ToBe(t, int(qValueMax))

	v, ok = parseQValue("0.5")
	expect.Any(ok).ToBe(t, true)
	expect.Number(int(v)).ToBe(t, 500)

	_, ok = parseQValue("2")
	expect.Any(ok).ToBe(t, false)

	_, ok = parseQValue("nope")
	expect.Any(ok).ToBe(t, false)
}

func TestEncodingSuffixAndToken(t *testing.T) {
	expect.String(EncodingGzip.suffix()).ToBe(t, ".gz")
	expect.String(EncodingBrotli.suffix()).ToBe(t, ".br")
	expect.String(EncodingDeflate.suffix()).ToBe(t, ".zz")
	expect.String(EncodingIdentity.suffix()).ToBe(t, "")

	expect.String(EncodingGzip.token()).ToBe(t, "gzip")
	expect.String(EncodingBrotli.token()).ToBe(t, "br")
	expect.String(EncodingDeflate.token()).ToBe(t, "deflate")
	expect.String(EncodingIdentity.token()).ToBe(t, "")
}

func TestEncodingFromToken(t *testing.T) {
	enc, ok := encodingFromToken("gzip")
	expect.Any(ok).ToBe(t, true)
	expect.Number(int(enc)).ToBe(t, int(EncodingGzip))

	_, ok = encodingFromToken("bogus")
	expect.Any(ok).ToBe(t, false)
}
