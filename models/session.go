package models

import (
	"time"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
)

// WorkSession is one clock-in/clock-out pair. EndTime stays nil while the
// session is open; at most one session per employee may be open at a time.
type WorkSession struct {
	Id         int64      `gorm:"primaryKey" json:"id"`
	EmployeeId int64      `gorm:"index:idx_sessions_employee_date" json:"employee_id"`
	Date       string     `gorm:"type:varchar(10);index:idx_sessions_employee_date" json:"date"` // "YYYY-MM-DD"
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (WorkSession) TableName() string {
	return "work_sessions"
}

// SessionSpans converts stored sessions for engine consumption, ordered as
// given.
func SessionSpans(sessions []WorkSession) []engine.SessionSpan {
	spans := make([]engine.SessionSpan, 0, len(sessions))
	for _, s := range sessions {
		spans = append(spans, engine.SessionSpan{Start: s.StartTime, End: s.EndTime})
	}
	return spans
}
