// Reader for fasta format files.

package aln

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/andrew-torda/cleanaln/pkg/numrec"
	"github.com/andrew-torda/cleanaln/pkg/white"
)

// An item is terminated by a newline if we are in a header or a
// comment character ">" if we are in a sequence.
const nl = '\n'

type item struct {
	data     []byte
	complete bool
}

type lexer struct {
	input    []byte
	ichan    chan *item
	rdr      io.Reader
	itempool sync.Pool
	names    []string
	rows     [][]byte
	cmmt     string // partial header
	seq      []byte // partial sequence
	first    bool   // still waiting for the first record
	open     bool   // a header has been seen, record not yet stored
	term     byte
	err      error
}

const defaultReadSize = 512

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing, to push buffer
// boundaries through the middle of records.
func setFastaRdSize(i int) {
	if i <= 2 {
		panic("setFastaRdSize given buffer length of 2 or less")
	}
	rdsize = i
}

func newItem() interface{} { return new(item) }

// next reads from the input and sends an item to channel, ichan.
// An item is terminated by l.term, or the end of the buffer or
// end of input.
func (l *lexer) next() {
	l.itempool.New = newItem
	for {
		item := l.itempool.Get().(*item)
		if len(l.input) == 0 {
			l.input = make([]byte, rdsize)
			if n, err := l.rdr.Read(l.input); n != rdsize {
				if n == 0 {
					if err != nil && err != io.EOF {
						l.err = err // signal that a real error occurred
					}
					item.data = []byte("")
					item.complete = true
					l.ichan <- item // we have to flush
					close(l.ichan)
					return
				} else { // Partial read. EOF, not an error.
					// Terminate with a newline, never ">". A pending
					// sequence is completed by the flush item, while
					// an artificial ">" could end up in a name.
					l.input[n] = nl
					l.input = l.input[:n+1]
				}
			}
		}

		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			item.data = l.input // no terminator found, so just send
			l.input = nil       // back whatever we have in the buffer.
			item.complete = false
		} else { //                                We did find a terminator
			newlInput := l.input[ndx+1:] //        Advance pointer
			item.data = l.input[:ndx]    //
			item.complete = true         //
			l.input = newlInput          //        Set up for next loop
			if l.term == nl {
				l.term = cmmt_char
			} else {
				l.term = nl
			}
		}
		l.ichan <- item
	}
}

// commit stores the record we have been accumulating. The very first
// record needs care. Its ">" has not been eaten as a terminator, and
// if it has no ">" at all, it is text sitting in front of the first
// header, which fasta says we should ignore.
func (l *lexer) commit() {
	nam, sq := l.cmmt, l.seq
	l.cmmt = ""
	l.seq = nil
	l.open = false
	if l.first {
		l.first = false
		if !strings.HasPrefix(nam, ">") {
			return
		}
		nam = nam[1:]
	}
	l.names = append(l.names, strings.TrimSpace(nam))
	l.rows = append(l.rows, sq)
}

type stateFn func(*lexer) stateFn

// We are reading a sequence
func gseq(l *lexer) stateFn {
	item := <-l.ichan
	if item == nil || l.err != nil {
		return nil
	}
	defer l.itempool.Put(item)

	white.Remove(&item.data)
	l.seq = append(l.seq, item.data...)
	if item.complete {
		l.commit()
		return gcmmt
	}
	return gseq
}

// We are reading a header
func gcmmt(l *lexer) stateFn {
	item := <-l.ichan
	if item == nil || l.err != nil {
		return nil
	}
	defer l.itempool.Put(item)

	l.cmmt = l.cmmt + string(item.data)
	if item.complete {
		item.complete = false
		l.open = true
		return gseq
	}
	return gcmmt
}

// ReadFasta reads fasta formatted text and returns it as an
// alignment, rows in file order. Gaps stay in, white space goes.
// nExpect is a capacity hint for the number of records; zero is fine.
// Row lengths are not checked here. That is the degeneracy guard's
// job, which runs once right after loading.
func ReadFasta(rdr io.Reader, nExpect int) (*Alignment, error) {
	l := lexer{rdr: rdr, ichan: make(chan *item, 2), term: nl, first: true}
	if nExpect > 0 {
		l.names = make([]string, 0, nExpect)
		l.rows = make([][]byte, 0, nExpect)
	}

	go l.next()
	for state := gcmmt; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return nil, l.err
	}
	if l.open && (l.cmmt != "" || len(l.seq) > 0) {
		l.commit() // input ended in the middle of a record
	}
	if len(l.rows) == 0 {
		return nil, ErrNoSeqs
	}
	return &Alignment{names: l.names, rows: l.rows}, nil
}

// Readfile reads an alignment from a named file, or standard input
// if the name is empty. For real files we count the records first by
// mapping the file, so the reader does not have to grow its slices.
func Readfile(fname string) (*Alignment, error) {
	var fp io.ReadCloser
	var err error
	nExpect := 0
	if fname != "" {
		if n, nerr := numrec.Count(fname); nerr == nil {
			nExpect = n
		}
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
	} else {
		fp = os.Stdin
		fname = "stdin"
	}
	defer fp.Close()

	a, err := ReadFasta(fp, nExpect)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return a, nil
}
