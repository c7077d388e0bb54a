// 8 Mar 2024
// Writing the cleaned alignment back out. The output keeps the
// original sequence order, so we walk the original name list and dole
// out rows of the current matrix to the names that survived.

package aln

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// RmHeader is the line that opens the removal report.
const RmHeader = "Removed sequences:"

// Reconcile writes one fasta record per original name, in original
// order. A name that was not removed is paired with the next
// unconsumed row of rows and the row cursor advances. A removed name
// goes to the removal report instead, if rm is not nil.
// The one thing we insist on: the number of surviving names must
// equal the number of rows. If it does not, some stage reordered or
// dropped rows without telling anyone, and writing output would
// produce a silently misaligned file. We die instead.
func Reconcile(out io.Writer, rm io.Writer, rows [][]byte, origNames []string,
	removed map[string]bool) error {
	nLive := 0
	for _, nam := range origNames {
		if !removed[nam] {
			nLive++
		}
	}
	if nLive != len(rows) {
		return fmt.Errorf("%w: %d surviving names for %d rows",
			ErrInvariant, nLive, len(rows))
	}

	if rm != nil {
		if _, err := fmt.Fprintln(rm, RmHeader); err != nil {
			return err
		}
	}
	i := 0
	for _, nam := range origNames {
		if removed[nam] {
			if rm != nil {
				if _, err := fmt.Fprintln(rm, nam); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "%c%s\n%s\n", cmmt_char, nam, rows[i]); err != nil {
			return err
		}
		i++
	}
	return nil
}

// WriteOutfile is the file-path wrapper around Reconcile. The removal
// report is appended to, not truncated. The run context wipes it once
// at startup and stages may have logged their own notes to it since.
// An empty rmfile name means no report is wanted.
func WriteOutfile(outfile, rmfile string, rows [][]byte, origNames []string,
	removed map[string]bool) error {
	fp, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer fp.Close()
	out := bufio.NewWriter(fp)

	var rm io.Writer
	if rmfile != "" {
		rfp, err := os.OpenFile(rmfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening removal report: %w", err)
		}
		defer rfp.Close()
		rm = rfp
	}

	if err := Reconcile(out, rm, rows, origNames, removed); err != nil {
		return err
	}
	return out.Flush()
}
