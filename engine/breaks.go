package engine

import "time"

// BreakSpan is one break interval of a day. End is nil while the break is
// still open; at most one span per day may be open.
type BreakSpan struct {
	Kind  BreakKind
	Start time.Time
	End   *time.Time
}

// SessionSpan is one clock-in/clock-out pair. End is nil while the session is
// open.
type SessionSpan struct {
	Start time.Time
	End   *time.Time
}

// BreakSummary aggregates a day's break minutes per kind. Closed minutes come
// from completed intervals; ActiveMinutes is the projection of the one
// currently-open break at the evaluation instant and must never be persisted
// as a closed duration.
type BreakSummary struct {
	PaidMinutes   int
	UnpaidMinutes int
	ExtraMinutes  int
	HasActive     bool
	ActiveKind    BreakKind
	ActiveMinutes int
}

// SummarizeBreaks totals the day's break spans. now is only consulted for an
// open span.
func SummarizeBreaks(spans []BreakSpan, now time.Time) BreakSummary {
	var sum BreakSummary
	for _, span := range spans {
		if span.End == nil {
			// clamp against clock skew
			minutes := int(now.Sub(span.Start) / time.Minute)
			if minutes < 0 {
				minutes = 0
			}
			sum.HasActive = true
			sum.ActiveKind = span.Kind
			sum.ActiveMinutes = minutes
			continue
		}
		minutes := int(span.End.Sub(span.Start) / time.Minute)
		if minutes < 0 {
			minutes = 0
		}
		switch span.Kind {
		case BreakPaid:
			sum.PaidMinutes += minutes
		case BreakUnpaid:
			sum.UnpaidMinutes += minutes
		case BreakExtra:
			sum.ExtraMinutes += minutes
		}
	}
	return sum
}

// EffectiveTotals folds the open break's projected minutes into its own kind
// and returns the per-kind running totals used for extension math.
func (b BreakSummary) EffectiveTotals() (paid, unpaid, extra int) {
	paid, unpaid, extra = b.PaidMinutes, b.UnpaidMinutes, b.ExtraMinutes
	if b.HasActive {
		switch b.ActiveKind {
		case BreakPaid:
			paid += b.ActiveMinutes
		case BreakUnpaid:
			unpaid += b.ActiveMinutes
		case BreakExtra:
			extra += b.ActiveMinutes
		}
	}
	return paid, unpaid, extra
}

// ExcessPaid is the paid-break time beyond the shift allowance. The allowance
// itself is absorbed into the base shift duration.
func (b BreakSummary) ExcessPaid(p ShiftPolicy) int {
	paid, _, _ := b.EffectiveTotals()
	excess := paid - p.PaidBreakAllowanceMinutes
	if excess < 0 {
		return 0
	}
	return excess
}

// EffectiveUnpaid is the unpaid-break time that extends logout. When no paid
// break has been taken yet, unpaid time consumes the paid allowance first;
// once any paid break exists, every unpaid minute extends.
func (b BreakSummary) EffectiveUnpaid(p ShiftPolicy) int {
	paid, unpaid, _ := b.EffectiveTotals()
	if paid == 0 {
		unpaid -= p.PaidBreakAllowanceMinutes
		if unpaid < 0 {
			return 0
		}
	}
	return unpaid
}

// ExtensionMinutes is the total break time that pushes logout later. Extra
// breaks carry no allowance.
func (b BreakSummary) ExtensionMinutes(p ShiftPolicy) int {
	_, _, extra := b.EffectiveTotals()
	return b.ExcessPaid(p) + b.EffectiveUnpaid(p) + extra
}

// SessionMinutes totals the day's session time. An open session is projected
// to now. The second return reports whether any session is still open.
func SessionMinutes(spans []SessionSpan, now time.Time) (int, bool) {
	total := 0
	open := false
	for _, span := range spans {
		end := now
		if span.End != nil {
			end = *span.End
		} else {
			open = true
		}
		minutes := int(end.Sub(span.Start) / time.Minute)
		if minutes > 0 {
			total += minutes
		}
	}
	return total, open
}

// EarliestStart is the authoritative clock-in instant for lateness purposes.
func EarliestStart(spans []SessionSpan) *time.Time {
	var earliest *time.Time
	for i := range spans {
		if earliest == nil || spans[i].Start.Before(*earliest) {
			earliest = &spans[i].Start
		}
	}
	return earliest
}

// WorkedMinutes is session time net of breaks that do not count as work:
// unpaid and extra minutes plus paid minutes beyond the allowance.
func WorkedMinutes(sessionMinutes int, b BreakSummary, p ShiftPolicy) int {
	_, unpaid, extra := b.EffectiveTotals()
	worked := sessionMinutes - unpaid - extra - b.ExcessPaid(p)
	if worked < 0 {
		return 0
	}
	return worked
}
