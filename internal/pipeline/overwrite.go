package pipeline

import (
	"os"
	"sort"
	"strings"
)

// CheckOverwrite collects every path in paths (skipping empties) that
// already exists on disk and, if any do and allowOverwrite is false,
// returns a UsageError naming all of them at once, per
// original_source/subs2cia/cli_common_overwrite.py's
// check_overwritten_outputs. With allowOverwrite set, or when nothing
// clashes, it returns nil.
func CheckOverwrite(paths []string, allowOverwrite bool) error {
	if allowOverwrite {
		return nil
	}

	seen := make(map[string]bool)
	var existing []string
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	sort.Strings(existing)

	var b strings.Builder
	if len(existing) == 1 {
		b.WriteString("output path already exists: ")
		b.WriteString(existing[0])
	} else {
		b.WriteString("multiple output paths already exist:\n")
		for _, p := range existing {
			b.WriteString("  ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	b.WriteString("\npass --overwrite (-w) to ignore existing outputs, or choose a different --output-path")

	return NewUsageError(b.String())
}
