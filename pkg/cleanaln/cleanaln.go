// 29 Mar 2024

// Package cleanaln is the driver. It reads the alignment, decides
// what kind of residues it holds, runs the cleaning pipeline and then
// the optional extras: consensus, similarity matrices, plots, logos.
// main() lives in cmd/cleanaln and only parses flags.
package cleanaln

import (
	"fmt"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	"github.com/andrew-torda/cleanaln/pkg/consensus"
	"github.com/andrew-torda/cleanaln/pkg/pipeline"
	"github.com/andrew-torda/cleanaln/pkg/plot"
	"github.com/andrew-torda/cleanaln/pkg/simmat"
)

// Every output file is the stem plus one of these.
const (
	outSuffix      = "_parsed.fasta"
	rmSuffix       = "_removed.txt"
	logSuffix      = "_log.txt"
	consSuffix     = "_consensus.fasta"
	withConsSuffix = "_with_consensus.fasta"
	simInSuffix    = "_input_similarity.tsv"
	simOutSuffix   = "_output_similarity.tsv"
	plotInSuffix   = "_input.png"
	plotOutSuffix  = "_output.png"
	plotMarkSuffix = "_markup.png"
	covSuffix      = "_coverage.png"
	logoSuffix     = "_logo.png"
)

// CmdFlag holds everything settable from the command line.
type CmdFlag struct {
	All bool // turn on every cleaning stage

	CropEnds       bool
	CropEndsMinGap int

	RemoveBadlyAligned  bool
	BadlyAlignedMinPerc float64

	RemoveInsertions  bool
	InsertionMinSize  int
	InsertionMaxSize  int
	InsertionMinFlank int

	RemoveShort    bool
	ShortMinLength int

	RemoveGapOnly bool

	MakeConsensus   bool
	ConsensusNonGap bool // gaps do not vote in the consensus
	ConsensusName   string
	KeepConsensus   bool // also write the alignment with the consensus appended

	MakeSimilarityInput  bool
	MakeSimilarityOutput bool
	SimMinOverlap        int
	SimKeepGaps          bool
	SimDp                int

	PlotInput    bool
	PlotOutput   bool
	PlotMarkup   bool
	PlotCoverage bool

	MakeLogo bool
	TextLogo bool // letters instead of plain bars
}

// Mymain is the real main. Read, classify, clean, write, decorate.
// Everything it produces is named from the output stem.
func Mymain(flags *CmdFlag, infile, stem string) error {
	rc, err := NewRunCtx(stem)
	if err != nil {
		return err
	}
	defer rc.Close()

	a, err := aln.Readfile(infile)
	if err != nil {
		rc.Logf("%v", err)
		return err
	}
	rc.Logf("read %d sequences of %d columns from %s", a.NSeq(), a.NCol(), infile)

	orig := a.Copy() // the plots and similarity matrix want the original later

	stype, err := a.GetType()
	if err != nil {
		rc.Logf("%v", err)
		return err
	}
	rc.Logf("%v alignment detected", stype)

	if flags.All {
		flags.CropEnds = true
		flags.RemoveBadlyAligned = true
		flags.RemoveInsertions = true
		flags.RemoveShort = true
		flags.RemoveGapOnly = true
	}
	cfg := &pipeline.Config{
		CropEnds:            flags.CropEnds,
		CropEndsMinGap:      flags.CropEndsMinGap,
		RemoveBadlyAligned:  flags.RemoveBadlyAligned,
		BadlyAlignedMinPerc: flags.BadlyAlignedMinPerc,
		RemoveInsertions:    flags.RemoveInsertions,
		InsertionMinSize:    flags.InsertionMinSize,
		InsertionMaxSize:    flags.InsertionMaxSize,
		InsertionMinFlank:   flags.InsertionMinFlank,
		RemoveShort:         flags.RemoveShort,
		ShortMinLength:      flags.ShortMinLength,
		RemoveGapOnly:       flags.RemoveGapOnly,
		Outfile:             stem + outSuffix,
		Rmfile:              stem + rmSuffix,
	}
	p := pipeline.New(a, cfg, rc)
	if err := p.Run(); err != nil {
		rc.Logf("pipeline: %v", err)
		return err
	}

	if err := aln.WriteOutfile(cfg.Outfile, cfg.Rmfile, p.Rows(),
		orig.Names(), p.Tracker().RemovedSeqs()); err != nil {
		rc.Logf("%v", err)
		return err
	}
	rc.Logf("wrote %s, %d sequences of %d columns",
		cfg.Outfile, len(p.Rows()), len(p.Tracker().PosMap()))

	cur := aln.New(p.Tracker().Names(), p.Rows())
	return extras(flags, rc, orig, cur, p.Markup(), stype, stem)
}

// extras runs the post-pipeline collaborators. None of them feeds
// back into the cleaned alignment, so their order does not matter.
func extras(flags *CmdFlag, rc *RunCtx, orig, cur *aln.Alignment,
	mk pipeline.Markup, stype aln.SeqType, stem string) error {

	if flags.MakeConsensus || flags.PlotCoverage {
		cons, cov := consensus.Find(cur, flags.ConsensusNonGap)
		if flags.MakeConsensus {
			name := flags.ConsensusName
			if name == "" {
				name = "consensus"
			}
			if err := consensus.Write(stem+consSuffix, name, cons); err != nil {
				return fmt.Errorf("consensus: %w", err)
			}
			rc.Logf("wrote %s", stem+consSuffix)
			if flags.KeepConsensus {
				if err := consensus.WriteWith(stem+withConsSuffix, name, cur, cons); err != nil {
					return fmt.Errorf("consensus: %w", err)
				}
				rc.Logf("wrote %s", stem+withConsSuffix)
			}
		}
		if flags.PlotCoverage {
			if err := plot.Coverage(stem+covSuffix, cov); err != nil {
				return fmt.Errorf("coverage plot: %w", err)
			}
			rc.Logf("wrote %s", stem+covSuffix)
		}
	}

	simOpt := &simmat.Options{
		MinOverlap: flags.SimMinOverlap,
		KeepGaps:   flags.SimKeepGaps,
		Dp:         flags.SimDp,
	}
	if flags.MakeSimilarityInput {
		m := simmat.Calc(orig, simOpt)
		if err := simmat.WriteTSV(stem+simInSuffix, orig.Names(), m, simOpt.Dp); err != nil {
			return fmt.Errorf("similarity: %w", err)
		}
		rc.Logf("wrote %s", stem+simInSuffix)
	}
	if flags.MakeSimilarityOutput {
		m := simmat.Calc(cur, simOpt)
		if err := simmat.WriteTSV(stem+simOutSuffix, cur.Names(), m, simOpt.Dp); err != nil {
			return fmt.Errorf("similarity: %w", err)
		}
		rc.Logf("wrote %s", stem+simOutSuffix)
	}

	if flags.PlotInput {
		if err := plot.Mini(stem+plotInSuffix, orig.Rows(), stype); err != nil {
			return fmt.Errorf("input plot: %w", err)
		}
		rc.Logf("wrote %s", stem+plotInSuffix)
	}
	if flags.PlotOutput {
		if err := plot.Mini(stem+plotOutSuffix, cur.Rows(), stype); err != nil {
			return fmt.Errorf("output plot: %w", err)
		}
		rc.Logf("wrote %s", stem+plotOutSuffix)
	}
	if flags.PlotMarkup {
		if err := plot.MiniMarkup(stem+plotMarkSuffix, orig, mk); err != nil {
			return fmt.Errorf("markup plot: %w", err)
		}
		rc.Logf("wrote %s", stem+plotMarkSuffix)
	}

	if flags.MakeLogo {
		var err error
		if flags.TextLogo {
			err = plot.LogoText(stem+logoSuffix, cur, stype)
		} else {
			err = plot.LogoBar(stem+logoSuffix, cur, stype)
		}
		if err != nil {
			return fmt.Errorf("logo: %w", err)
		}
		rc.Logf("wrote %s", stem+logoSuffix)
	}
	return nil
}
