package models

import (
	"time"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
)

// BreakInterval is one break inside a work session. EndTime stays nil while
// the break is open; at most one break per employee may be open, and only
// while a session is open.
type BreakInterval struct {
	Id         int64            `gorm:"primaryKey" json:"id"`
	EmployeeId int64            `gorm:"index:idx_breaks_employee_date" json:"employee_id"`
	SessionId  int64            `json:"session_id"`
	Date       string           `gorm:"type:varchar(10);index:idx_breaks_employee_date" json:"date"`
	Kind       engine.BreakKind `gorm:"type:varchar(10)" json:"kind"`
	StartTime  time.Time        `json:"start_time"`
	EndTime    *time.Time       `json:"end_time"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (BreakInterval) TableName() string {
	return "break_intervals"
}

// BreakSpans converts stored breaks for engine consumption.
func BreakSpans(breaks []BreakInterval) []engine.BreakSpan {
	spans := make([]engine.BreakSpan, 0, len(breaks))
	for _, b := range breaks {
		spans = append(spans, engine.BreakSpan{Kind: b.Kind, Start: b.StartTime, End: b.EndTime})
	}
	return spans
}
