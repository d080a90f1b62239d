package models

import "time"

// TaskSequenceName is the counter used to allocate task ids.
const TaskSequenceName = "task_sequence"

// Task owns an embedded, ordered list of work-log entries, stored as a
// JSON document column. ActualTime is a derived aggregate: the sum of the
// hours of every log entry ever added, maintained incrementally by the
// log-work service. UserAccountID 0 means unassigned.
type Task struct {
	ID            int64        `gorm:"primarykey" json:"id"`
	Title         string       `gorm:"type:varchar(255);not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	StartTime     time.Time    `json:"start_time"`
	EstimatedTime float64      `json:"estimated_time"`
	ActualTime    float64      `json:"actual_time"`
	Status        EntityStatus `gorm:"not null" json:"status"`
	UserAccountID int64        `gorm:"index" json:"user_account_id"`
	LogWorks      []LogWork    `gorm:"serializer:json" json:"log_works"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// LogWork is an entry embedded in a task's work-log list. It is never
// removed from the list; deletion flips Status to DISABLE in place.
type LogWork struct {
	ID        string       `json:"id"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
	Status    EntityStatus `json:"status"`
}

// Duration returns the entry's logged hours. Whole minutes are counted,
// matching how the aggregate has always been computed.
func (l LogWork) Duration() float64 {
	minutes := int64(l.EndTime.Sub(l.StartTime) / time.Minute)
	return float64(minutes) / 60.0
}
