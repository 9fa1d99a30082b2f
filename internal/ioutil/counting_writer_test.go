package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/uriwerk/uri/internal/ioutil"
)

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errWrite }

func TestCountingWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("http")
	cw.Fprint("://", "example.com")
	cw.Call(func(w io.Writer) (int, error) {
		return io.WriteString(w, "/path")
	})

	num, err := cw.Result()
	if err != nil {
		t.Fatalf("Result() error = %v, want nil", err)
	}
	if got, want := sb.String(), "http://example.com/path"; got != want {
		t.Errorf("written %q, want %q", got, want)
	}
	if got, want := num, len(sb.String()); got != want {
		t.Errorf("Result() num = %d, want %d", got, want)
	}
}

func TestCountingWriterStickyError(t *testing.T) {
	t.Parallel()

	cw := ioutil.GetCountingWriter(failingWriter{})
	defer ioutil.FreeCountingWriter(cw)

	if _, err := cw.WriteString("abc"); !errors.Is(err, errWrite) {
		t.Fatalf("WriteString() error = %v, want %v", err, errWrite)
	}
	// Writes after a failure must not reach the underlying writer.
	if n, err := cw.Fprint("def"); n != 0 || !errors.Is(err, errWrite) {
		t.Errorf("Fprint() = (%d, %v), want (0, %v)", n, err, errWrite)
	}
	if num, err := cw.Result(); num != 0 || !errors.Is(err, errWrite) {
		t.Errorf("Result() = (%d, %v), want (0, %v)", num, err, errWrite)
	}
}
