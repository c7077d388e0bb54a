// 5 Mar 2024

// Package white removes ascii white space from byte slices. The
// fasta reader calls it on every chunk of sequence data, so it works
// in place and does not allocate.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove squeezes the white space out of a byte slice in place and
// shortens the slice to fit.
func Remove(ps *[]byte) {
	s := *ps
	j := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[j] = c
			j++
		}
	}
	*ps = s[:j]
}

// Has reports whether a byte slice contains any white space. Cheaper
// than Remove when the answer is usually no.
func Has(s []byte) bool {
	for _, c := range s {
		if asciiSpace[c] {
			return true
		}
	}
	return false
}
