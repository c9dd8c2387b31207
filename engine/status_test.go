package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workingDay() DayContext {
	return DayContext{
		ClockIn:       atp(9, 0),
		DayComplete:   true,
		WorkedMinutes: 510,
		MinWorkingMin: 480,
	}
}

func TestResolveStatusAdminOverrideUntouched(t *testing.T) {
	day := workingDay()
	day.OverriddenByAdmin = true
	_, ok := ResolveAttendanceStatus(day)
	assert.False(t, ok)
}

func TestResolveStatusAdminHalfDayPreserved(t *testing.T) {
	day := workingDay()
	day.AdminHalfDay = true
	day.PriorReasonCode = ReasonAdminSet
	day.PriorReasonText = "approved early leave"

	c, ok := ResolveAttendanceStatus(day)
	require.True(t, ok)
	assert.Equal(t, StatusHalfDay, c.Status)
	assert.Equal(t, ReasonAdminSet, c.HalfDayReasonCode)
	assert.Equal(t, "approved early leave", c.HalfDayReasonText)
	assert.Equal(t, SourceAdmin, c.HalfDaySource)
}

func TestResolveStatusNonWorkingDay(t *testing.T) {
	holiday := workingDay()
	holiday.IsHoliday = true
	c, ok := ResolveAttendanceStatus(holiday)
	require.True(t, ok)
	assert.Equal(t, StatusNonWorking, c.Status)

	// weekly off wins even with no log at all
	off := DayContext{IsWeeklyOff: true}
	c, ok = ResolveAttendanceStatus(off)
	require.True(t, ok)
	assert.Equal(t, StatusNonWorking, c.Status)
}

func TestResolveStatusLeave(t *testing.T) {
	day := workingDay()
	day.OnApprovedLeave = true
	c, ok := ResolveAttendanceStatus(day)
	require.True(t, ok)
	assert.Equal(t, StatusLeave, c.Status)
}

func TestResolveStatusAbsentWithoutClockIn(t *testing.T) {
	c, ok := ResolveAttendanceStatus(DayContext{MinWorkingMin: 480})
	require.True(t, ok)
	assert.Equal(t, StatusAbsent, c.Status)
}

func TestResolveStatusLateLoginHalfDay(t *testing.T) {
	day := workingDay()
	day.Late = LateVerdict{IsLate: true, LateMinutes: 250, HalfDay: true}

	c, ok := ResolveAttendanceStatus(day)
	require.True(t, ok)
	assert.Equal(t, StatusHalfDay, c.Status)
	assert.Equal(t, ReasonLateLogin, c.HalfDayReasonCode)
	assert.Equal(t, SourceAuto, c.HalfDaySource)
	assert.True(t, c.IsLate)
	assert.Equal(t, 250, c.LateMinutes)
}

func TestResolveStatusInsufficientHours(t *testing.T) {
	day := workingDay()
	day.WorkedMinutes = 250

	c, ok := ResolveAttendanceStatus(day)
	require.True(t, ok)
	assert.Equal(t, StatusHalfDay, c.Status)
	assert.Equal(t, ReasonInsufficientHours, c.HalfDayReasonCode)
	assert.Equal(t, "worked 4h 10m, below the required minimum", c.HalfDayReasonText)
}

func TestResolveStatusInsufficientHoursNeedsCompleteDay(t *testing.T) {
	day := workingDay()
	day.WorkedMinutes = 100
	day.DayComplete = false

	c, ok := ResolveAttendanceStatus(day)
	require.True(t, ok)
	assert.Equal(t, StatusOnTime, c.Status)
}

func TestResolveStatusLateLoginWinsOverInsufficientHours(t *testing.T) {
	day := workingDay()
	day.WorkedMinutes = 200
	day.Late = LateVerdict{IsLate: true, LateMinutes: 300, HalfDay: true}

	c, ok := ResolveAttendanceStatus(day)
	require.True(t, ok)
	assert.Equal(t, ReasonLateLogin, c.HalfDayReasonCode)
}

func TestResolveStatusPlainLate(t *testing.T) {
	day := workingDay()
	day.Late = LateVerdict{IsLate: true, LateMinutes: 45}

	c, ok := ResolveAttendanceStatus(day)
	require.True(t, ok)
	assert.Equal(t, StatusLate, c.Status)
	assert.Equal(t, 45, c.LateMinutes)
	assert.False(t, c.IsHalfDay)
}

func TestResolveStatusOnTime(t *testing.T) {
	c, ok := ResolveAttendanceStatus(workingDay())
	require.True(t, ok)
	assert.Equal(t, StatusOnTime, c.Status)
	assert.False(t, c.IsLate)
	assert.False(t, c.IsHalfDay)
}

func TestFormatWorkedTime(t *testing.T) {
	assert.Equal(t, "8h 5m", FormatWorkedTime(485))
	assert.Equal(t, "0h 0m", FormatWorkedTime(-3))
}
