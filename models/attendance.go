package models

import (
	"time"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
)

// DailyAttendanceRecord is the persisted per-day classification. It is
// created on the first clock-in of a calendar day and never deleted;
// corrections are in-place field updates carrying audit metadata.
type DailyAttendanceRecord struct {
	Id          int64      `gorm:"primaryKey" json:"id"`
	EmployeeId  int64      `gorm:"index:idx_attendance_employee_date,unique" json:"employee_id"`
	Date        string     `gorm:"type:varchar(10);index:idx_attendance_employee_date,unique" json:"date"`
	ClockInTime *time.Time `json:"clock_in_time"`

	PaidBreakMinutes   int `json:"paid_break_minutes"`
	UnpaidBreakMinutes int `json:"unpaid_break_minutes"`
	ExtraBreakMinutes  int `json:"extra_break_minutes"`

	IsLate            bool                     `json:"is_late"`
	LateMinutes       int                      `json:"late_minutes"`
	IsHalfDay         bool                     `json:"is_half_day"`
	HalfDayReasonCode engine.HalfDayReasonCode `gorm:"type:varchar(40)" json:"half_day_reason_code"`
	HalfDayReasonText string                   `gorm:"type:varchar(255)" json:"half_day_reason_text"`
	HalfDaySource     engine.HalfDaySource     `gorm:"type:varchar(10)" json:"half_day_source"`
	AttendanceStatus  engine.AttendanceStatus  `gorm:"type:varchar(20)" json:"attendance_status"`
	OverriddenByAdmin bool                     `json:"overridden_by_admin"`

	BackfilledAt    *time.Time `json:"backfilled_at"`
	BackfilledBy    string     `gorm:"type:varchar(64);index" json:"backfilled_by"`
	BackfillVersion string     `gorm:"type:varchar(20)" json:"backfill_version"`
	BackfillReason  string     `gorm:"type:varchar(255)" json:"backfill_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyAttendanceRecord) TableName() string {
	return "daily_attendance_records"
}

// ApplyClassification writes the resolver output onto the record's
// classification fields.
func (r *DailyAttendanceRecord) ApplyClassification(c engine.Classification) {
	r.AttendanceStatus = c.Status
	r.IsLate = c.IsLate
	r.LateMinutes = c.LateMinutes
	r.IsHalfDay = c.IsHalfDay
	r.HalfDayReasonCode = c.HalfDayReasonCode
	r.HalfDayReasonText = c.HalfDayReasonText
	r.HalfDaySource = c.HalfDaySource
}

// MatchesClassification reports whether the stored classification already
// agrees with the resolver output.
func (r *DailyAttendanceRecord) MatchesClassification(c engine.Classification) bool {
	return r.AttendanceStatus == c.Status &&
		r.IsLate == c.IsLate &&
		r.LateMinutes == c.LateMinutes &&
		r.IsHalfDay == c.IsHalfDay &&
		r.HalfDayReasonCode == c.HalfDayReasonCode
}
