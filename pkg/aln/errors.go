// 3 Mar 2024
// The handful of ways a run can die. They are all fatal. Nothing is
// retried, since every stage is deterministic and a retry would just
// reproduce the failure. Callers pick them apart with errors.Is.

package aln

import "errors"

var (
	// ErrNoSeqs says the input was empty or held no fasta records.
	ErrNoSeqs = errors.New("no sequences found in input")

	// ErrRagged says the rows are not all the same length. We refuse
	// to write any output in this case. A ragged alignment cannot be
	// reasoned about, so truncating or padding would only hide the bug.
	ErrRagged = errors.New("sequences in alignment are not the same length")

	// ErrEmptied says a cleaning stage deleted every row or every
	// column. Whatever was still standing has already been written
	// out by the time a caller sees this.
	ErrEmptied = errors.New("we deleted so much that the alignment is gone")

	// ErrSeqType says the first sequence is mostly symbols we do not
	// recognise as nucleotides or amino acids.
	ErrSeqType = errors.New("majority of positions are not known nucleotides or amino acids")

	// ErrInvariant marks a programming error, not a user error: a
	// stage handed back a name or column that does not exist, or the
	// name list and the matrix have drifted apart. Better to die here
	// than to write a silently misaligned file.
	ErrInvariant = errors.New("alignment bookkeeping out of step")
)
