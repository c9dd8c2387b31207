package engine

import (
	"fmt"
	"time"
)

// DayContext carries everything the status resolver needs about one
// employee-day. Prior* fields are the stored classification, consulted only
// when an admin flag protects it.
type DayContext struct {
	OverriddenByAdmin bool
	AdminHalfDay      bool
	PriorReasonCode   HalfDayReasonCode
	PriorReasonText   string

	IsHoliday       bool
	IsWeeklyOff     bool
	OnApprovedLeave bool

	ClockIn       *time.Time
	DayComplete   bool // no session still open
	WorkedMinutes int
	MinWorkingMin int
	Late          LateVerdict
}

// Classification is the tuple the resolver produces for persistence.
type Classification struct {
	Status            AttendanceStatus
	IsLate            bool
	LateMinutes       int
	IsHalfDay         bool
	HalfDayReasonCode HalfDayReasonCode
	HalfDayReasonText string
	HalfDaySource     HalfDaySource
}

// ResolveAttendanceStatus merges holiday, leave, lateness and worked-hours
// signals into the final per-day status. The second return is false when the
// record is admin-overridden and must not be touched at all.
//
// Priority: admin override, admin-set half-day, holiday/weekly off, approved
// leave, no clock-in, late-login half-day, insufficient worked hours, then
// the plain late verdict. Exactly one half-day reason is retained; late login
// wins over insufficient hours when both fire.
func ResolveAttendanceStatus(day DayContext) (Classification, bool) {
	if day.OverriddenByAdmin {
		return Classification{}, false
	}

	if day.AdminHalfDay {
		return Classification{
			Status:            StatusHalfDay,
			IsLate:            day.Late.IsLate,
			LateMinutes:       day.Late.LateMinutes,
			IsHalfDay:         true,
			HalfDayReasonCode: priorOrAdminReason(day),
			HalfDayReasonText: day.PriorReasonText,
			HalfDaySource:     SourceAdmin,
		}, true
	}

	if day.IsHoliday || day.IsWeeklyOff {
		return Classification{Status: StatusNonWorking}, true
	}

	if day.OnApprovedLeave {
		return Classification{Status: StatusLeave}, true
	}

	if day.ClockIn == nil {
		return Classification{Status: StatusAbsent}, true
	}

	if day.Late.HalfDay {
		return Classification{
			Status:            StatusHalfDay,
			IsLate:            true,
			LateMinutes:       day.Late.LateMinutes,
			IsHalfDay:         true,
			HalfDayReasonCode: ReasonLateLogin,
			HalfDayReasonText: fmt.Sprintf("clocked in %d minutes after shift start", day.Late.LateMinutes),
			HalfDaySource:     SourceAuto,
		}, true
	}

	if day.DayComplete && day.WorkedMinutes < day.MinWorkingMin {
		return Classification{
			Status:            StatusHalfDay,
			IsLate:            day.Late.IsLate,
			LateMinutes:       day.Late.LateMinutes,
			IsHalfDay:         true,
			HalfDayReasonCode: ReasonInsufficientHours,
			HalfDayReasonText: fmt.Sprintf("worked %s, below the required minimum", FormatWorkedTime(day.WorkedMinutes)),
			HalfDaySource:     SourceAuto,
		}, true
	}

	if day.Late.IsLate {
		return Classification{
			Status:      StatusLate,
			IsLate:      true,
			LateMinutes: day.Late.LateMinutes,
		}, true
	}

	return Classification{Status: StatusOnTime}, true
}

func priorOrAdminReason(day DayContext) HalfDayReasonCode {
	if day.PriorReasonCode != ReasonNone {
		return day.PriorReasonCode
	}
	return ReasonAdminSet
}

// FormatWorkedTime renders minutes as "<H>h <M>m".
func FormatWorkedTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
