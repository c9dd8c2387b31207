package models

import (
	"time"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
)

type ShiftDefinition struct {
	Id               int64            `gorm:"primaryKey" json:"id"`
	Name             string           `gorm:"type:varchar(100)" json:"name"`
	ShiftType        engine.ShiftType `gorm:"type:varchar(20)" json:"shift_type"`
	StartTime        string           `gorm:"type:varchar(8)" json:"start_time"` // "HH:MM", fixed shifts only
	EndTime          string           `gorm:"type:varchar(8)" json:"end_time"`
	DurationHours    int              `json:"duration_hours"`
	WorkingMinutes   int              `json:"working_minutes"`    // 0 = engine default
	PaidBreakMinutes int              `json:"paid_break_minutes"` // 0 = engine default
	IsNarrowWindow   bool             `json:"is_narrow_window"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (ShiftDefinition) TableName() string {
	return "shift_definitions"
}

// Spec is the engine-facing view of this shift.
func (s ShiftDefinition) Spec() engine.ShiftSpec {
	return engine.ShiftSpec{
		Type:             s.ShiftType,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		DurationHours:    s.DurationHours,
		WorkingMinutes:   s.WorkingMinutes,
		PaidBreakMinutes: s.PaidBreakMinutes,
		NarrowWindow:     s.IsNarrowWindow,
	}
}
