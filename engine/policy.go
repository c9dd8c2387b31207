package engine

import (
	"strconv"
	"strings"
	"time"
)

// Default policy constants. A shift definition may override working minutes
// and the paid-break allowance explicitly.
const (
	DefaultWorkingMinutes    = 510
	DefaultPaidBreakMinutes  = 30
	DefaultGraceMinutes      = 30
	DefaultMinWorkingMinutes = 480
)

// ShiftSpec is the engine-facing view of a shift definition record.
type ShiftSpec struct {
	Type             ShiftType
	StartTime        string // "HH:MM", fixed shifts only
	EndTime          string // "HH:MM", fixed shifts only
	DurationHours    int
	WorkingMinutes   int // 0 means use the default
	PaidBreakMinutes int // 0 means use the default
	NarrowWindow     bool
}

// ShiftPolicy is the normalized numeric policy the calculators run on.
type ShiftPolicy struct {
	WorkingMinutes            int
	PaidBreakAllowanceMinutes int
	BaseShiftMinutes          int
	IsFixed                   bool
	IsNarrowWindow            bool
	StartMinute               int // minutes since midnight, fixed shifts only
	EndMinute                 int
}

// ResolvePolicy normalizes a shift definition into a ShiftPolicy. It fails
// closed: when a fixed shift is missing its start or end time the second
// return is false and callers must leave any prior classification unchanged.
func ResolvePolicy(s ShiftSpec) (ShiftPolicy, bool) {
	allowance := s.PaidBreakMinutes
	if allowance == 0 {
		allowance = DefaultPaidBreakMinutes
	}

	working := s.WorkingMinutes
	if working == 0 {
		if s.DurationHours > 0 {
			working = s.DurationHours*60 - allowance
		} else {
			working = DefaultWorkingMinutes
		}
	}

	p := ShiftPolicy{
		WorkingMinutes:            working,
		PaidBreakAllowanceMinutes: allowance,
		BaseShiftMinutes:          working + allowance,
	}

	switch s.Type {
	case ShiftFixed:
		start, err := ParseClockMinutes(s.StartTime)
		if err != nil {
			return ShiftPolicy{}, false
		}
		end, err := ParseClockMinutes(s.EndTime)
		if err != nil {
			return ShiftPolicy{}, false
		}
		p.IsFixed = true
		p.IsNarrowWindow = s.NarrowWindow
		p.StartMinute = start
		p.EndMinute = end
	case ShiftFlexible:
		// duration-only, no wall-clock anchor
	default:
		return ShiftPolicy{}, false
	}

	return p, true
}

// ParseClockMinutes converts "HH:MM" (seconds tolerated and ignored) into
// minutes since midnight.
func ParseClockMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, &time.ParseError{Layout: "15:04", Value: s, Message: ": not a clock time"}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, &time.ParseError{Layout: "15:04", Value: s, Message: ": out of range"}
	}
	return hours*60 + minutes, nil
}

// minuteOfDay anchors a minutes-since-midnight value to the calendar day of
// ref, in ref's location.
func minuteOfDay(ref time.Time, m int) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), m/60, m%60, 0, 0, ref.Location())
}
