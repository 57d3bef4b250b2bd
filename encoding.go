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

import (
	"sort"
	"strconv"
	"strings"
)

// Encoding identifies a content-encoding variant a file may be stored as.
type Encoding int

const (
	EncodingIdentity Encoding = iota
	EncodingGzip
	EncodingDeflate
	EncodingBrotli
)

// suffix is the filename suffix a precompressed sibling file carries.
func (e Encoding) suffix() string {
	switch e {
	case EncodingGzip:
		return ".gz"
	case EncodingDeflate:
		return ".zz"
	case EncodingBrotli:
		return ".br"
	default:
		return ""
	}
}

// token is the Content-Encoding header value for e, or "" for identity.
func (e Encoding) token() string {
	switch e {
	case EncodingGzip:
		return "gzip"
	case EncodingDeflate:
		return "deflate"
	case EncodingBrotli:
		return "br"
	default:
		return ""
	}
}

func encodingFromToken(token string) (Encoding, bool) {
	switch token {
	case "gzip":
		return EncodingGzip, true
	case "deflate":
		return EncodingDeflate, true
	case "br":
		return EncodingBrotli, true
	case "identity":
		return EncodingIdentity, true
	default:
		return 0, false
	}
}

// PrecompressedPolicy controls which precompressed variants a Handler is
// willing to look up and serve.
type PrecompressedPolicy struct {
	Gzip    bool
	Deflate bool
	Brotli  bool
}

func (p PrecompressedPolicy) allows(e Encoding) bool {
	switch e {
	case EncodingGzip:
		return p.Gzip
	case EncodingDeflate:
		return p.Deflate
	case EncodingBrotli:
		return p.Brotli
	default:
		return true
	}
}

// qValue is an Accept-Encoding weight in thousandths (0..1000); the wire
// format allows at most three digits after the decimal point.
type qValue int

const qValueMax qValue = 1000

func parseQValue(raw string) (qValue, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return qValueMax, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return qValue(f*1000 + 0.5), true
}

type encodingCandidate struct {
	encoding Encoding
	weight   qValue
	order    int // tie-break: br(0) > gzip(1) > deflate(2), lower wins
}

func encodingOrder(e Encoding) int {
	switch e {
	case EncodingBrotli:
		return 0
	case EncodingGzip:
		return 1
	case EncodingDeflate:
		return 2
	default:
		return 3
	}
}

// negotiateEncodings parses the Accept-Encoding header value and returns the
// encodings permitted by policy with q > 0, most preferred first. Preference
// is by descending q-value, with ties broken br > gzip > deflate.
func negotiateEncodings(acceptEncoding string, policy PrecompressedPolicy) []Encoding {
	candidates := make([]encodingCandidate, 0, 4)
	seen := map[Encoding]bool{}

	if acceptEncoding != "" {
		for _, part := range strings.Split(acceptEncoding, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			token := part
			weight := qValueMax
			if idx := strings.IndexByte(part, ';'); idx >= 0 {
				token = strings.TrimSpace(part[:idx])
				params := part[idx+1:]
				for _, p := range strings.Split(params, ";") {
					p = strings.TrimSpace(p)
					if q, ok := strings.CutPrefix(p, "q="); ok {
						if w, valid := parseQValue(q); valid {
							weight = w
						}
					}
				}
			}
			if token == "*" {
				continue // a bare wildcard does not select a specific precompressed variant
			}
			enc, ok := encodingFromToken(token)
			if !ok || enc == EncodingIdentity || weight == 0 {
				continue
			}
			if !policy.allows(enc) {
				continue
			}
			seen[enc] = true
			candidates = append(candidates, encodingCandidate{encoding: enc, weight: weight, order: encodingOrder(enc)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight > candidates[j].weight
		}
		return candidates[i].order < candidates[j].order
	})

	result := make([]Encoding, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.encoding)
	}
	return result
}
