// 29 Mar 2024

package cleanaln

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// RunCtx is the context of one run: the log file and a run identity.
// There is no global logger. Whoever wants to write a log line gets
// handed one of these.
type RunCtx struct {
	fp *os.File
	id string
}

// NewRunCtx opens the run log and truncates the removal report. The
// report is appended to during the run, so any leftover from an
// earlier run with the same stem has to go now, not at write time.
func NewRunCtx(stem string) (*RunCtx, error) {
	fp, err := os.Create(stem + logSuffix)
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}
	rc := &RunCtx{fp: fp, id: uuid.NewString()}
	rc.Logf("run %s started %s", rc.id, time.Now().Format(time.RFC3339))
	if err := os.WriteFile(stem+rmSuffix, nil, 0644); err != nil {
		fp.Close()
		return nil, fmt.Errorf("truncating removal report: %w", err)
	}
	return rc, nil
}

// Logf writes one line to the run log.
func (rc *RunCtx) Logf(format string, a ...interface{}) {
	fmt.Fprintf(rc.fp, format+"\n", a...)
}

// Id returns the run identity, for anyone filing the outputs.
func (rc *RunCtx) Id() string { return rc.id }

func (rc *RunCtx) Close() error { return rc.fp.Close() }
