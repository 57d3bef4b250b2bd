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
	"net/http"
	"time"
)

// conditionalOutcome is the result of evaluating a request's conditional
// headers against a file's last-modified time.
type conditionalOutcome int

const (
	conditionalPass conditionalOutcome = iota
	conditionalNotModified
	conditionalPreconditionFailed
)

// evaluateConditional checks If-Unmodified-Since first, then
// If-Modified-Since (each the raw header value, or "" if absent), against
// modTime (nil if the file's modification time is unknown). Comparisons use
// whole-second resolution, matching the granularity of the HTTP-date wire
// format.
func evaluateConditional(ifUnmodifiedSince, ifModifiedSince string, modTime *time.Time) conditionalOutcome {
	if ifUnmodifiedSince != "" {
		if ius, ok := parseHTTPDate(ifUnmodifiedSince); ok {
			if modTime == nil || truncateToSecond(*modTime).After(ius) {
				return conditionalPreconditionFailed
			}
		}
	}
	if ifModifiedSince != "" {
		if ims, ok := parseHTTPDate(ifModifiedSince); ok {
			if modTime != nil && !truncateToSecond(*modTime).After(ims) {
				return conditionalNotModified
			}
		}
	}
	return conditionalPass
}

func parseHTTPDate(raw string) (time.Time, bool) {
	t, err := http.ParseTime(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateToSecond(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

// formatLastModified renders modTime as an HTTP-date, or "" if modTime is nil.
func formatLastModified(modTime *time.Time) string {
	if modTime == nil {
		return ""
	}
	return modTime.UTC().Format(http.TimeFormat)
}
