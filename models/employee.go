package models

import "time"

type Employee struct {
	Id           int64           `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255)" json:"name"`
	Email        string          `gorm:"type:varchar(255)" json:"email"`
	Username     string          `gorm:"type:varchar(100);uniqueIndex" json:"username"`
	Password     string          `gorm:"type:varchar(255)" json:"-"`
	ShiftId      int64           `json:"shift_id"`
	Shift        ShiftDefinition `gorm:"foreignKey:ShiftId" json:"shift"`
	WeeklyOffDay int             `json:"weekly_off_day"` // time.Weekday numbering, 0 = Sunday
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
