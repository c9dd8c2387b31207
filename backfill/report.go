package backfill

import (
	"fmt"
	"sort"
	"strings"
)

// Report is the structured summary of one reconciliation run.
type Report struct {
	RunID    string
	Mode     Mode
	Scanned  int
	Eligible int
	Updated  int
	Reverted int
	Errors   int
	Skipped  map[string]int
}

func newReport(opts Options) *Report {
	return &Report{
		RunID:   opts.RunID,
		Mode:    opts.Mode,
		Skipped: make(map[string]int),
	}
}

func (r *Report) skip(reason string) {
	r.Skipped[reason]++
}

// SkippedTotal sums every skip tally.
func (r *Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

// Summary renders the operator-facing run summary.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mode:     %s\n", r.Mode)
	if r.RunID != "" {
		fmt.Fprintf(&b, "run id:   %s\n", r.RunID)
	}
	fmt.Fprintf(&b, "scanned:  %d\n", r.Scanned)
	if r.Mode == ModeRollback {
		fmt.Fprintf(&b, "reverted: %d\n", r.Reverted)
	} else {
		fmt.Fprintf(&b, "eligible: %d\n", r.Eligible)
		fmt.Fprintf(&b, "updated:  %d\n", r.Updated)
	}
	fmt.Fprintf(&b, "skipped:  %d\n", r.SkippedTotal())

	reasons := make([]string, 0, len(r.Skipped))
	for reason := range r.Skipped {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(&b, "  %-20s %d\n", reason, r.Skipped[reason])
	}

	fmt.Fprintf(&b, "errors:   %d", r.Errors)
	return b.String()
}
