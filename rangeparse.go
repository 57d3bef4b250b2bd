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
	"errors"
	"strconv"
	"strings"
)

// RangeSpec is an inclusive byte range, 0 <= Start <= End < file length.
type RangeSpec struct {
	Start uint64
	End   uint64
}

// ErrRangeUnsatisfiable is returned by parseRangeHeader when the header's
// syntax is valid but no requested range fits inside the file, or the
// header's syntax could not be parsed at all.
var ErrRangeUnsatisfiable = errors.New("httpdir: range not satisfiable")

// parseRangeHeader parses the value of a Range request header against a file
// of the given size. A nil, nil result means no Range header was present.
// A nil slice with a non-nil error means the header was present but could
// not be satisfied (ErrRangeUnsatisfiable); this includes the case where
// every range in the header was dropped, so a nil error always comes with
// at least one range.
func parseRangeHeader(headerValue string, fileSize uint64) ([]RangeSpec, error) {
	if headerValue == "" {
		return nil, nil
	}
	const prefix = "bytes="
	if !strings.HasPrefix(headerValue, prefix) {
		return nil, ErrRangeUnsatisfiable
	}
	rest := headerValue[len(prefix):]
	if rest == "" {
		return nil, ErrRangeUnsatisfiable
	}

	var ranges []RangeSpec
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, ErrRangeUnsatisfiable
		}
		spec, ok := parseOneRange(part, fileSize)
		if !ok {
			continue // unit ranges not satisfiable by this file are dropped, per RFC 7233 §2.1
		}
		ranges = append(ranges, spec)
	}

	if len(ranges) == 0 {
		return nil, ErrRangeUnsatisfiable
	}
	return ranges, nil
}

func parseOneRange(part string, fileSize uint64) (RangeSpec, bool) {
	dash := strings.IndexByte(part, '-')
	if dash < 0 {
		return RangeSpec{}, false
	}
	startRaw, endRaw := part[:dash], part[dash+1:]

	if startRaw == "" {
		// suffix range: "-N" means the last N bytes.
		suffixLen, err := strconv.ParseUint(endRaw, 10, 64)
		if err != nil || suffixLen == 0 || fileSize == 0 {
			return RangeSpec{}, false
		}
		if suffixLen > fileSize {
			suffixLen = fileSize
		}
		return RangeSpec{Start: fileSize - suffixLen, End: fileSize - 1}, true
	}

	start, err := strconv.ParseUint(startRaw, 10, 64)
	if err != nil || start >= fileSize {
		return RangeSpec{}, false
	}

	if endRaw == "" {
		return RangeSpec{Start: start, End: fileSize - 1}, true
	}

	end, err := strconv.ParseUint(endRaw, 10, 64)
	if err != nil || end < start {
		return RangeSpec{}, false
	}
	if end >= fileSize {
		end = fileSize - 1
	}
	return RangeSpec{Start: start, End: end}, true
}
