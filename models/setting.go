package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
)

// Setting is an admin-configurable runtime value. Settings are read fresh on
// every evaluation so an update takes effect immediately without a restart.
type Setting struct {
	KeyName   string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:varchar(255)" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

const (
	SettingGraceMinutes       = "grace_period_minutes"
	SettingLateHalfDayAfter   = "late_half_day_after_minutes"
	SettingMinimumWorkMinutes = "minimum_working_minutes"
)

// SettingInt reads an integer setting, falling back when the row is missing
// or unparseable.
func SettingInt(db *gorm.DB, key string, fallback int) int {
	var s Setting
	if err := db.Where("key_name = ?", key).First(&s).Error; err != nil {
		return fallback
	}
	v, err := strconv.Atoi(s.Value)
	if err != nil {
		return fallback
	}
	return v
}

// GraceMinutes is the tolerance after shift start before a clock-in counts
// as late.
func GraceMinutes(db *gorm.DB) int {
	return SettingInt(db, SettingGraceMinutes, engine.DefaultGraceMinutes)
}

// LateHalfDayAfterMinutes promotes a late login to a half-day once lateness
// exceeds it.
func LateHalfDayAfterMinutes(db *gorm.DB) int {
	return SettingInt(db, SettingLateHalfDayAfter, 240)
}

// MinimumWorkingMinutes is the worked-time floor below which a completed day
// is classified as a half-day.
func MinimumWorkingMinutes(db *gorm.DB) int {
	return SettingInt(db, SettingMinimumWorkMinutes, engine.DefaultMinWorkingMinutes)
}
