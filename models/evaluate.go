package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
)

// DayEvaluation is one employee-day run through the full resolver chain. The
// live API and the backfill reconciler both go through EvaluateDay so the two
// paths can never disagree on a classification.
type DayEvaluation struct {
	Record   *DailyAttendanceRecord
	Sessions []WorkSession
	Breaks   []BreakInterval

	Policy   engine.ShiftPolicy
	PolicyOK bool

	ClockIn       *time.Time
	Summary       engine.BreakSummary
	WorkedMinutes int
	DayComplete   bool
	Late          engine.LateVerdict
	LogoutTime    *time.Time

	Classification engine.Classification
	// Classifiable is false when the shift policy cannot be resolved or the
	// record is admin-overridden; the stored classification must then be left
	// unchanged.
	Classifiable bool
}

// EvaluateDay loads one employee-day and runs every resolver over it. now is
// the evaluation instant for open sessions and breaks.
func EvaluateDay(db *gorm.DB, emp Employee, date string, now time.Time) (DayEvaluation, error) {
	ev := DayEvaluation{}

	var record DailyAttendanceRecord
	err := db.Where("employee_id = ? AND date = ?", emp.Id, date).First(&record).Error
	switch err {
	case nil:
		ev.Record = &record
	case gorm.ErrRecordNotFound:
		// no clock-in yet; evaluation still classifies the day
	default:
		return ev, err
	}

	if err := db.Where("employee_id = ? AND date = ?", emp.Id, date).
		Order("start_time asc").Find(&ev.Sessions).Error; err != nil {
		return ev, err
	}
	if err := db.Where("employee_id = ? AND date = ?", emp.Id, date).
		Order("start_time asc").Find(&ev.Breaks).Error; err != nil {
		return ev, err
	}

	shift := emp.Shift
	if shift.Id == 0 && emp.ShiftId != 0 {
		if err := db.First(&shift, emp.ShiftId).Error; err != nil && err != gorm.ErrRecordNotFound {
			return ev, err
		}
	}
	ev.Policy, ev.PolicyOK = engine.ResolvePolicy(shift.Spec())

	ev.ClockIn = engine.EarliestStart(SessionSpans(ev.Sessions))
	if ev.ClockIn == nil && ev.Record != nil {
		ev.ClockIn = ev.Record.ClockInTime
	}

	ev.Summary = engine.SummarizeBreaks(BreakSpans(ev.Breaks), now)
	sessionMinutes, open := engine.SessionMinutes(SessionSpans(ev.Sessions), now)
	ev.DayComplete = len(ev.Sessions) > 0 && !open
	ev.WorkedMinutes = engine.WorkedMinutes(sessionMinutes, ev.Summary, ev.Policy)

	if !ev.PolicyOK {
		return ev, nil
	}

	if ev.ClockIn != nil {
		ev.Late = engine.ResolveLateStatus(*ev.ClockIn, ev.Policy,
			GraceMinutes(db), LateHalfDayAfterMinutes(db))
	}
	ev.LogoutTime = engine.CalculateLogoutTime(ev.ClockIn, ev.Summary, ev.Policy)

	holiday, weeklyOff, onLeave, err := dayFlags(db, emp, date)
	if err != nil {
		return ev, err
	}

	day := engine.DayContext{
		IsHoliday:       holiday,
		IsWeeklyOff:     weeklyOff,
		OnApprovedLeave: onLeave,
		ClockIn:         ev.ClockIn,
		DayComplete:     ev.DayComplete,
		WorkedMinutes:   ev.WorkedMinutes,
		MinWorkingMin:   MinimumWorkingMinutes(db),
		Late:            ev.Late,
	}
	if ev.Record != nil {
		day.OverriddenByAdmin = ev.Record.OverriddenByAdmin
		day.AdminHalfDay = ev.Record.IsHalfDay && ev.Record.HalfDaySource == engine.SourceAdmin
		day.PriorReasonCode = ev.Record.HalfDayReasonCode
		day.PriorReasonText = ev.Record.HalfDayReasonText
	}

	ev.Classification, ev.Classifiable = engine.ResolveAttendanceStatus(day)
	return ev, nil
}

func dayFlags(db *gorm.DB, emp Employee, date string) (holiday, weeklyOff, onLeave bool, err error) {
	var holidayCount int64
	if err = db.Model(&Holiday{}).Where("date = ?", date).Count(&holidayCount).Error; err != nil {
		return
	}
	holiday = holidayCount > 0

	if parsed, perr := time.Parse("2006-01-02", date); perr == nil {
		weeklyOff = int(parsed.Weekday()) == emp.WeeklyOffDay
	}

	var leaveCount int64
	if err = db.Model(&LeaveRequest{}).
		Where("employee_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			emp.Id, LeaveApproved, date, date).
		Count(&leaveCount).Error; err != nil {
		return
	}
	onLeave = leaveCount > 0
	return
}
