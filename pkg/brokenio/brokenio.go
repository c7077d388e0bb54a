// 31 Mar 2024

// Package brokenio wraps a reader so that it fails on cue. The
// loading code has error paths a healthy file never takes, and tests
// want those paths walked deterministically.
package brokenio

import "io"

// Reader passes bytes through from the wrapped reader until the limit
// is used up, then answers every call with the chosen error. A read
// that straddles the limit is truncated, so the error always arrives
// on a call of its own, the way a failing file descriptor delivers it.
type Reader struct {
	rdr   io.Reader
	limit int // bytes still allowed through
	err   error
}

// NewReader wraps rdr. After limit bytes, reads fail with err.
func NewReader(rdr io.Reader, limit int, err error) *Reader {
	return &Reader{rdr: rdr, limit: limit, err: err}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.limit <= 0 {
		return 0, r.err
	}
	if len(p) > r.limit {
		p = p[:r.limit]
	}
	n, err := r.rdr.Read(p)
	r.limit -= n
	return n, err
}
