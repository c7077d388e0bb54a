// 11 Mar 2024

package aln_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/cleanaln/pkg/aln"
)

// TestReconcile covers the canonical case: original names A, B, C,
// B was removed, and the two surviving rows get dealt out in order.
func TestReconcile(t *testing.T) {
	var out, rm strings.Builder
	rows := [][]byte{[]byte("ACGT"), []byte("GGTA")}
	origNames := []string{"A", "B", "C"}
	removed := map[string]bool{"B": true}

	if err := Reconcile(&out, &rm, rows, origNames, removed); err != nil {
		t.Fatal("reconcile", err)
	}
	want := ">A\nACGT\n>C\nGGTA\n"
	if d := cmp.Diff(want, out.String()); d != "" {
		t.Fatal("output mismatch\n", d)
	}
	wantRm := RmHeader + "\nB\n"
	if d := cmp.Diff(wantRm, rm.String()); d != "" {
		t.Fatal("report mismatch\n", d)
	}
}

// TestReconcileNothingRemoved writes everything back in order.
func TestReconcileNothingRemoved(t *testing.T) {
	var out strings.Builder
	rows := [][]byte{[]byte("AC"), []byte("GT")}
	if err := Reconcile(&out, nil, rows, []string{"x", "y"}, nil); err != nil {
		t.Fatal("reconcile", err)
	}
	if out.String() != ">x\nAC\n>y\nGT\n" {
		t.Fatal("got", out.String())
	}
}

// TestReconcileEmptyMatrix: everything was removed; the output file
// has no records and the report has all the names.
func TestReconcileEmptyMatrix(t *testing.T) {
	var out, rm strings.Builder
	removed := map[string]bool{"a": true, "b": true}
	if err := Reconcile(&out, &rm, nil, []string{"a", "b"}, removed); err != nil {
		t.Fatal("reconcile", err)
	}
	if out.String() != "" {
		t.Fatal("expected no records, got", out.String())
	}
	if rm.String() != RmHeader+"\na\nb\n" {
		t.Fatal("report got", rm.String())
	}
}

// TestReconcileMiscount: surviving name count and row count disagree.
// This is the one precondition we insist on checking, because
// getting it wrong writes a silently misaligned file.
func TestReconcileMiscount(t *testing.T) {
	var out strings.Builder
	rows := [][]byte{[]byte("ACGT")}
	err := Reconcile(&out, nil, rows, []string{"A", "B"}, nil)
	if !errors.Is(err, ErrInvariant) {
		t.Fatal("wanted ErrInvariant, got", err)
	}
}
