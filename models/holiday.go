package models

import "time"

type Holiday struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"type:varchar(10);uniqueIndex" json:"date"`
	Name      string    `gorm:"type:varchar(100)" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
