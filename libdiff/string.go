package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffString renders a character-level view of a string change, with
// insertions as {+text+} and deletions as {-text-}.
func diffString(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffDelete:
			b.WriteString("{-" + diff.Text + "-}")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
