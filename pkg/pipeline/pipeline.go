// 19 Mar 2024

// Package pipeline runs the cleaning stages over an alignment, in a
// fixed order, and keeps the matrix, the name list and the column
// position map telling the same story throughout. The stages
// themselves live in pkg/trim and know nothing about each other.
package pipeline

import (
	"fmt"

	"github.com/andrew-torda/cleanaln/pkg/aln"
	"github.com/andrew-torda/cleanaln/pkg/trim"
)

// Logger is the one logging method the pipeline needs. The run
// context of the caller satisfies it. A nil logger is fine and means
// silence.
type Logger interface {
	Logf(format string, a ...interface{})
}

// Config selects which stages run and with what thresholds. It never
// changes the stage order. Crop first, so quality scoring sees
// cleaner data; prune sequences before hunting gap-only columns,
// since removing sequences is what creates them; gap-only last.
type Config struct {
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

	// Where the guard writes its best-effort output if a stage
	// empties the alignment. Empty names mean nothing gets written.
	Outfile string
	Rmfile  string
}

// Pipeline owns the current state triple while the stages run. Each
// stage gets the current rows and returns fresh ones. Only Run
// advances the state, so a stage can never alias a snapshot someone
// else kept.
type Pipeline struct {
	cfg       *Config
	lg        Logger
	rows      [][]byte
	tk        *Tracker
	mk        Markup
	origNames []string
}

// New sets up a pipeline over an alignment. The alignment is the
// freshly loaded one. Its rows are taken over by the pipeline, so
// callers wanting the original untouched should hand us a copy's
// rows or keep their own copy, which the driver does anyway.
func New(a *aln.Alignment, cfg *Config, lg Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		lg:        lg,
		rows:      a.Rows(),
		tk:        NewTracker(a.Names(), a.NCol()),
		mk:        make(Markup),
		origNames: append([]string(nil), a.Names()...),
	}
}

// Rows returns the current matrix.
func (p *Pipeline) Rows() [][]byte { return p.rows }

// Tracker returns the bookkeeping, for the reconciler and the plots.
func (p *Pipeline) Tracker() *Tracker { return p.tk }

// Markup returns the per-stage removal records.
func (p *Pipeline) Markup() Markup { return p.mk }

func (p *Pipeline) logf(f string, a ...interface{}) {
	if p.lg != nil {
		p.lg.Logf(f, a...)
	}
}

// Run checks the freshly loaded alignment and then works through the
// enabled stages. After every stage the markup is recorded, the
// tracker updated and the guard consulted. The first fatal error
// stops everything. No stage after it runs, and nothing is retried.
// A retry would only reproduce the failure, the stages are
// deterministic.
func (p *Pipeline) Run() error {
	if err := p.guard(); err != nil {
		return err
	}

	if p.cfg.CropEnds {
		rows, marked := trim.CropEnds(p.rows, p.tk.Names(), p.tk.PosMap(),
			p.cfg.CropEndsMinGap)
		p.rows = rows
		p.mk[StageCropEnds] = StageResult{Crops: marked}
		p.logf("%s: cropped ends of %d sequences", StageCropEnds, len(marked))
		if err := p.guard(); err != nil {
			return err
		}
	}

	if p.cfg.RemoveBadlyAligned {
		rows, rm := trim.RemoveBadlyAligned(p.rows, p.tk.Names(),
			p.cfg.BadlyAlignedMinPerc)
		if err := p.afterSeqStage(StageBadlyAligned, rows, rm); err != nil {
			return err
		}
	}

	if p.cfg.RemoveInsertions {
		rows, rm := trim.RemoveInsertions(p.rows, p.tk.PosMap(),
			p.cfg.InsertionMinSize, p.cfg.InsertionMaxSize, p.cfg.InsertionMinFlank)
		if err := p.afterColStage(StageInsertions, rows, rm); err != nil {
			return err
		}
	}

	if p.cfg.RemoveShort {
		rows, rm := trim.RemoveTooShort(p.rows, p.tk.Names(), p.cfg.ShortMinLength)
		if err := p.afterSeqStage(StageShort, rows, rm); err != nil {
			return err
		}
	}

	if p.cfg.RemoveGapOnly {
		rows, rm := trim.RemoveGapOnly(p.rows, p.tk.PosMap())
		if err := p.afterColStage(StageGapOnly, rows, rm); err != nil {
			return err
		}
	}
	return nil
}

// afterSeqStage is the bookkeeping after a sequence-removing stage:
// store the removal record verbatim, drop the names, check the
// matrix still makes sense.
func (p *Pipeline) afterSeqStage(stage string, rows [][]byte, rm map[string]bool) error {
	p.rows = rows
	p.mk[stage] = StageResult{Names: rm}
	p.logf("%s: removed %d sequences", stage, len(rm))
	if err := p.tk.DropSeqs(rm); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	if err := p.tk.check(); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return p.guard()
}

// afterColStage is the same for a column-removing stage.
func (p *Pipeline) afterColStage(stage string, rows [][]byte, rm map[int]bool) error {
	p.rows = rows
	p.mk[stage] = StageResult{Cols: rm}
	p.logf("%s: removed %d columns", stage, len(rm))
	if err := p.tk.DropCols(rm); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	if err := p.tk.check(); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return p.guard()
}

// guard is run after loading and after every stage. Ragged rows are
// fatal on the spot, nothing gets written, there is no sensible
// output to write. An alignment that has lost all its rows or all
// its columns is also fatal, but first we write out whatever is
// still reconstructable, so the user can see what was left standing
// before the collapse.
func (p *Pipeline) guard() error {
	if len(p.rows) > 0 {
		w := len(p.rows[0])
		for i, r := range p.rows {
			if len(r) != w {
				return fmt.Errorf("%w: row %d has %d columns, row 0 has %d",
					aln.ErrRagged, i, len(r), w)
			}
		}
	}
	if len(p.rows) == 0 || len(p.rows[0]) == 0 {
		if p.cfg.Outfile != "" {
			if err := aln.WriteOutfile(p.cfg.Outfile, p.cfg.Rmfile, p.rows,
				p.origNames, p.tk.RemovedSeqs()); err != nil {
				p.logf("writing leftovers after collapse: %v", err)
			}
		}
		p.logf("alignment emptied, best-effort output written")
		return aln.ErrEmptied
	}
	return nil
}
