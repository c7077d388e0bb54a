package aln

var SetFastaRdSize = setFastaRdSize
