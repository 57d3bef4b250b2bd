package httpdir

import (
	"testing"
	"time"

	"github.com/rickb777/expect"
)

func TestEvaluateConditional_noHeaders(t *testing.T) {
	mod := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	outcome := evaluateConditional("", "", &mod)
	expect.Number(int(outcome)).ToBe(t, int(conditionalPass))
}

func TestEvaluateConditional_ifModifiedSince_notModified(t *testing.T) {
	mod := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	since := mod.Format(httpTimeFormatForTest)
	outcome := evaluateConditional("", since, &mod)
	expect.Number(int(outcome)).ToBe(t, int(conditionalNotModified))
}

func TestEvaluateConditional_ifModifiedSince_modified(t *testing.T) {
	mod := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	since := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Format(httpTimeFormatForTest)
	outcome := evaluateConditional("", since, &mod)
	expect.Number(int(outcome)).ToBe(t, int(conditionalPass))
}

func TestEvaluateConditional_ifModifiedSince_noModTime(t *testing.T) {
	since := time.Now().Format(httpTimeFormatForTest)
	outcome := evaluateConditional("", since, nil)
	expect.Number(int(outcome)).ToBe(t, int(conditionalPass))
}

func TestEvaluateConditional_ifUnmodifiedSince_passes(t *testing.T) {
	mod := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	since := mod.Format(httpTimeFormatForTest)
	outcome := evaluateConditional(since, "", &mod)
	expect.Number(int(outcome)).ToBe(t, int(conditionalPass))
}

func TestEvaluateConditional_ifUnmodifiedSince_fails(t *testing.T) {
	mod := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	since := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Format(httpTimeFormatForTest)
	outcome := evaluateConditional(since, "", &mod)
	expect.Number(int(outcome)).ToBe(t, int(conditionalPreconditionFailed))
}

func TestEvaluateConditional_ifUnmodifiedSince_noModTime_fails(t *testing.T) {
	since := time.Now().Format(httpTimeFormatForTest)
	outcome := evaluateConditional(since, "", nil)
	expect.Number(int(outcome)).ToBe(t, int(conditionalPreconditionFailed))
}

func TestFormatLastModified_nil(t *testing.T) {
	expect.String(formatLastModified(nil)).ToBe(t, "")
}

func TestFormatLastModified_set(t *testing.T) {
	mod := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	expect.String(formatLastModified(&mod)).ToBe(t, "Mon, 01 Jan 2024 12:00:00 GMT")
}

const httpTimeFormatForTest = "Mon, 02 Jan 2006 15:04:05 GMT"
