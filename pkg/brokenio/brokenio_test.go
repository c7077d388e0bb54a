// 31 Mar 2024

package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/cleanaln/pkg/brokenio"
)

func TestReaderFailsAtLimit(t *testing.T) {
	errBroke := errors.New("wire cut")
	r := brokenio.NewReader(strings.NewReader("0123456789"), 4, errBroke)

	b, err := io.ReadAll(r)
	if !errors.Is(err, errBroke) {
		t.Fatalf("wanted my error, got %v", err)
	}
	if string(b) != "0123" {
		t.Fatalf("got %q before the failure", b)
	}
}

func TestReaderZeroLimit(t *testing.T) {
	errBroke := errors.New("dead on arrival")
	r := brokenio.NewReader(strings.NewReader("abc"), 0, errBroke)
	if _, err := r.Read(make([]byte, 8)); !errors.Is(err, errBroke) {
		t.Fatalf("wanted my error, got %v", err)
	}
}
