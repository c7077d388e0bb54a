// 30 Mar 2024

// cleanaln reads a multiple sequence alignment, removes the junk and
// writes it back out, with optional plots and statistics on the side.
// All real work happens in pkg/cleanaln. Here we only parse flags.
package main

import (
	"flag"
	"fmt"
	"os"

	. "github.com/andrew-torda/cleanaln/pkg/aln/common"
	"github.com/andrew-torda/cleanaln/pkg/cleanaln"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: %s [options] infile outfile_stem\n", os.Args[0])
	fmt.Fprintln(flag.CommandLine.Output(),
		"infile is a fasta alignment, \"\" means stdin. Every output file\nis named outfile_stem plus a suffix.")
	flag.PrintDefaults()
}

func main() { os.Exit(mymain()) }

func mymain() int {
	var flags cleanaln.CmdFlag

	flag.BoolVar(&flags.All, "all", false, "turn on every cleaning stage")
	flag.BoolVar(&flags.CropEnds, "crop_ends", false,
		"crop badly aligned sequence ends")
	flag.IntVar(&flags.CropEndsMinGap, "crop_ends_mingap", 3,
		"smallest gap run that ends a ragged terminus")
	flag.BoolVar(&flags.RemoveBadlyAligned, "remove_badlyaligned", false,
		"remove sequences that disagree with the column majorities")
	flag.Float64Var(&flags.BadlyAlignedMinPerc, "remove_min_perc", 0.65,
		"smallest fraction of agreement a sequence may have")
	flag.BoolVar(&flags.RemoveInsertions, "remove_insertions", false,
		"remove insertions held by a minority of sequences")
	flag.IntVar(&flags.InsertionMinSize, "insertion_min_size", 3,
		"smallest insertion to remove")
	flag.IntVar(&flags.InsertionMaxSize, "insertion_max_size", 200,
		"biggest insertion to remove")
	flag.IntVar(&flags.InsertionMinFlank, "insertion_min_flank", 5,
		"solid columns needed either side of an insertion")
	flag.BoolVar(&flags.RemoveShort, "remove_short", false,
		"remove sequences with few residues")
	flag.IntVar(&flags.ShortMinLength, "remove_min_length", 50,
		"smallest number of residues a sequence may keep")
	flag.BoolVar(&flags.RemoveGapOnly, "remove_gaponly", true,
		"remove columns that are gap in every sequence")

	flag.BoolVar(&flags.MakeConsensus, "make_consensus", false,
		"write a consensus sequence")
	flag.BoolVar(&flags.ConsensusNonGap, "consensus_nongap", false,
		"gaps do not vote in the consensus")
	flag.StringVar(&flags.ConsensusName, "consensus_name", "consensus",
		"name of the consensus record")
	flag.BoolVar(&flags.KeepConsensus, "consensus_keep", false,
		"also write the alignment with the consensus appended")

	flag.BoolVar(&flags.MakeSimilarityInput, "make_similarity_input", false,
		"percent identity matrix of the input alignment")
	flag.BoolVar(&flags.MakeSimilarityOutput, "make_similarity_output", false,
		"percent identity matrix of the cleaned alignment")
	flag.IntVar(&flags.SimMinOverlap, "similarity_min_overlap", 1,
		"pairs overlapping in fewer columns score zero")
	flag.BoolVar(&flags.SimKeepGaps, "similarity_keep_gaps", false,
		"gap positions count in the identity")
	flag.IntVar(&flags.SimDp, "similarity_dp", 4,
		"decimal places in the similarity output")

	flag.BoolVar(&flags.PlotInput, "plot_input", false,
		"mini alignment image of the input")
	flag.BoolVar(&flags.PlotOutput, "plot_output", false,
		"mini alignment image of the cleaned alignment")
	flag.BoolVar(&flags.PlotMarkup, "plot_markup", false,
		"image of the input with everything removed coloured by stage")
	flag.BoolVar(&flags.PlotCoverage, "plot_coverage", false,
		"bar chart of non-gap coverage per column")
	flag.BoolVar(&flags.MakeLogo, "make_logo", false,
		"sequence logo of the cleaned alignment")
	flag.BoolVar(&flags.TextLogo, "logo_text", false,
		"draw letters in the logo instead of plain bars")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		return ExitUsageError
	}
	if err := cleanaln.Mymain(&flags, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, "cleanaln:", err)
		return ExitFailure
	}
	return ExitSuccess
}
