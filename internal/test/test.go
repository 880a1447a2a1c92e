package test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ava12/parsekit"
)

func fatalf(t *testing.T, message string, params ...any) {
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	Expect(t, expected == got, fmt.Sprintf("%q", expected), fmt.Sprintf("%q", got))
}

// ExpectEqual compares values structurally and reports the difference.
func ExpectEqual(t *testing.T, expected, got any, opts ...cmp.Option) {
	if diff := cmp.Diff(expected, got, opts...); diff != "" {
		fatalf(t, "unexpected value (-expected +got):\n%s", diff)
	}
}

func ExpectNoError(t *testing.T, e error) {
	if e != nil {
		fatalf(t, "unexpected error: %v", e)
	}
}

func ExpectErrorCode(t *testing.T, expected int, e error) *parsekit.Error {
	if e != nil {
		ee, valid := e.(*parsekit.Error)
		if valid && ee.Code == expected {
			return ee
		}
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
	return nil
}

// ExpectErrorAt checks both error code and position.
func ExpectErrorAt(t *testing.T, code, pos int, e error) *parsekit.Error {
	ee := ExpectErrorCode(t, code, e)
	if ee.Pos != pos {
		fatalf(t, "expecting error at position %d, got %d (%s)", pos, ee.Pos, ee.Message)
	}
	return ee
}
