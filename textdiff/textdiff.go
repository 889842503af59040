// Package textdiff diffs encoded documents for display.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two encoded documents. It returns the rendered diff and
// whether the documents differ.
func Diff(from, to string, color bool) (string, bool) {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)

	changed := false
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			changed = true
			break
		}
	}
	if !changed {
		return "", false
	}
	if color {
		return diffCfg.DiffPrettyText(diffs), true
	}
	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(diff.Text)
			sb.WriteString("+}")
		case diffpatch.DiffDelete:
			sb.WriteString("{-")
			sb.WriteString(diff.Text)
			sb.WriteString("-}")
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	return sb.String(), true
}
