// 18 Mar 2024

package pipeline

// The stage identifiers, used as markup keys and in log lines.
const (
	StageCropEnds     = "crop_ends"
	StageBadlyAligned = "remove_badlyaligned"
	StageInsertions   = "remove_insertions"
	StageShort        = "remove_short"
	StageGapOnly      = "remove_gaponly"
)

// StageResult is what one stage removed, kept exactly as the stage
// reported it. The pipeline never reads these again. They exist for
// the markup plot, which wants to paint what each stage did onto the
// original alignment.
type StageResult struct {
	Names map[string]bool  // removed sequence names
	Cols  map[int]bool     // removed original column indices
	Crops map[string][]int // crop-ends: original positions blanked, per name
}

// Markup maps stage identifier to that stage's removal record. A
// stage that was never enabled has no entry at all.
type Markup map[string]StageResult
