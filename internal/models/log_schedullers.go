package models

import (
	"time"
)

// Scheduler run statuses
const (
	SchedulerStatusStart   = "START"
	SchedulerStatusRunning = "RUNNING"
	SchedulerStatusSuccess = "SUCCESS"
	SchedulerStatusFailed  = "FAILED"
)

// LogSchedullers represents the log_schedullers table, one row per scheduler status change
type LogSchedullers struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	RunID            string    `json:"run_id" gorm:"column:run_id;size:36;index"`
	SchedullerCode   string    `json:"scheduller_code" gorm:"column:scheduller_code;size:64"`
	Message          string    `json:"message" gorm:"column:message"`
	StatusScheduller string    `json:"status_scheduller" gorm:"column:status_scheduller;size:16"`
	AffectedRows     int64     `json:"affected_rows" gorm:"column:affected_rows;default:0"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName sets the insert table name for LogSchedullers
func (LogSchedullers) TableName() string {
	return "log_schedullers"
}
