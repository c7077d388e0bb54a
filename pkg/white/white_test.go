// 5 Mar 2024

package white_test

import (
	"testing"

	"github.com/andrew-torda/cleanaln/pkg/white"
)

var wdata = []struct {
	in   string
	want string
}{
	{"abc", "abc"},
	{" a b c ", "abc"},
	{"\ta\nb\r\nc\v\f", "abc"},
	{"", ""},
	{" \n\t ", ""},
	{"AC-GT", "AC-GT"},
}

func TestRemove(t *testing.T) {
	for i, x := range wdata {
		b := []byte(x.in)
		white.Remove(&b)
		if string(b) != x.want {
			t.Fatalf("case %d got %q want %q", i, b, x.want)
		}
	}
}

func TestHas(t *testing.T) {
	if white.Has([]byte("acgt")) {
		t.Fatal("no white space here")
	}
	if !white.Has([]byte("ac gt")) {
		t.Fatal("missed a space")
	}
}
