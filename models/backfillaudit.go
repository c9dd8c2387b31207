package models

import (
	"time"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
)

// BackfillAudit snapshots a record's classification fields before a backfill
// run rewrites them. Rollback restores from these rows and touches nothing
// that does not carry the run identifier.
type BackfillAudit struct {
	Id       int64  `gorm:"primaryKey" json:"id"`
	RecordId int64  `gorm:"index" json:"record_id"`
	RunId    string `gorm:"type:varchar(64);index" json:"run_id"`

	PrevStatus      engine.AttendanceStatus  `gorm:"type:varchar(20)" json:"prev_status"`
	PrevIsLate      bool                     `json:"prev_is_late"`
	PrevLateMinutes int                      `json:"prev_late_minutes"`
	PrevIsHalfDay   bool                     `json:"prev_is_half_day"`
	PrevReasonCode  engine.HalfDayReasonCode `gorm:"type:varchar(40)" json:"prev_reason_code"`
	PrevReasonText  string                   `gorm:"type:varchar(255)" json:"prev_reason_text"`
	PrevSource      engine.HalfDaySource     `gorm:"type:varchar(10)" json:"prev_source"`

	CreatedAt time.Time `json:"created_at"`
}

func (BackfillAudit) TableName() string {
	return "backfill_audits"
}

// SnapshotOf captures a record's classification fields ahead of a write.
func SnapshotOf(r DailyAttendanceRecord, runID string) BackfillAudit {
	return BackfillAudit{
		RecordId:        r.Id,
		RunId:           runID,
		PrevStatus:      r.AttendanceStatus,
		PrevIsLate:      r.IsLate,
		PrevLateMinutes: r.LateMinutes,
		PrevIsHalfDay:   r.IsHalfDay,
		PrevReasonCode:  r.HalfDayReasonCode,
		PrevReasonText:  r.HalfDayReasonText,
		PrevSource:      r.HalfDaySource,
	}
}

// Restore writes the snapshot back onto the record and clears the backfill
// audit fields.
func (a BackfillAudit) Restore(r *DailyAttendanceRecord) {
	r.AttendanceStatus = a.PrevStatus
	r.IsLate = a.PrevIsLate
	r.LateMinutes = a.PrevLateMinutes
	r.IsHalfDay = a.PrevIsHalfDay
	r.HalfDayReasonCode = a.PrevReasonCode
	r.HalfDayReasonText = a.PrevReasonText
	r.HalfDaySource = a.PrevSource
	r.BackfilledAt = nil
	r.BackfilledBy = ""
	r.BackfillVersion = ""
	r.BackfillReason = ""
}
