package models

import "time"

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

type LeaveRequest struct {
	Id         int64       `gorm:"primaryKey" json:"id"`
	EmployeeId int64       `gorm:"index" json:"employee_id"`
	StartDate  string      `gorm:"type:varchar(10)" json:"start_date"`
	EndDate    string      `gorm:"type:varchar(10)" json:"end_date"`
	Reason     string      `gorm:"type:text" json:"reason"`
	Status     LeaveStatus `gorm:"type:varchar(10);default:PENDING" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}
