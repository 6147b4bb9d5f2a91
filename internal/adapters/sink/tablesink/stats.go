package tablesink

import (
	"fmt"
	"os"
	"sort"
	"strings"

	perr "dumpsift/internal/platform/errors"
)

// ReasonCount is one rejection reason and its tally. Reports carry the
// full reason enumeration in a fixed order, zero counts included
type ReasonCount struct {
	Name  string
	Count int64
}

// Report is the end-of-run summary written next to the data files
type Report struct {
	LinesRead   int64
	Kept        int64
	Filtered    int64
	Reasons     []ReasonCount
	SeenByForum map[string]int64
	KeptByForum map[string]int64
}

// WriteReport renders the report once, at end of run. Forum tables are
// sorted by name so reruns produce identical files
func WriteReport(path string, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Total lines processed: %d\n", r.LinesRead)
	fmt.Fprintf(&b, "Total lines kept for analysis: %d\n", r.Kept)
	fmt.Fprintf(&b, "Total lines filtered out: %d\n", r.Filtered)
	for _, rc := range r.Reasons {
		label := strings.ReplaceAll(rc.Name, "_", " ")
		fmt.Fprintf(&b, "Lines filtered out due to %s: %d\n", label, rc.Count)
	}

	b.WriteString("\nSubreddit counts (including filtered lines):\n")
	writeForumTable(&b, r.SeenByForum)
	b.WriteString("\nSubreddit counts (lines kept for analysis):\n")
	writeForumTable(&b, r.KeptByForum)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return perr.Wrap(err, perr.ErrorCodeSink, "write stats report")
	}
	return nil
}

func writeForumTable(b *strings.Builder, counts map[string]int64) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, "%s: %d\n", name, counts[name])
	}
}
