package engine

import "time"

// LateVerdict is the outcome of classifying a clock-in instant against the
// shift start and the grace period.
type LateVerdict struct {
	IsLate      bool
	LateMinutes int
	HalfDay     bool
}

// ResolveLateStatus classifies the clock-in instant. Flexible shifts have no
// wall-clock anchor and are never late. LateMinutes is measured from the
// nominal shift start, not from the end of the grace period. When
// halfDayAfterMinutes is positive and lateness exceeds it, the verdict is
// promoted to a half-day.
func ResolveLateStatus(clockIn time.Time, policy ShiftPolicy, graceMinutes, halfDayAfterMinutes int) LateVerdict {
	if !policy.IsFixed {
		return LateVerdict{}
	}

	shiftStart := minuteOfDay(clockIn, policy.StartMinute)
	deadline := shiftStart.Add(time.Duration(graceMinutes) * time.Minute)
	if !clockIn.After(deadline) {
		return LateVerdict{}
	}

	lateMinutes := int(clockIn.Sub(shiftStart) / time.Minute)
	return LateVerdict{
		IsLate:      true,
		LateMinutes: lateMinutes,
		HalfDay:     halfDayAfterMinutes > 0 && lateMinutes > halfDayAfterMinutes,
	}
}
