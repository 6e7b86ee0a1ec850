package models

import "time"

// Task is one actionable checklist item derived from a DailyPlan. Titles are
// unique within a (user, date), so the composite index doubles as the guard
// against duplicate task sets from concurrent derivation.
type Task struct {
    ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
    UserID      uint       `gorm:"uniqueIndex:idx_tasks_user_date_title;not null" json:"user_id"`
    Date        string     `gorm:"size:10;uniqueIndex:idx_tasks_user_date_title;not null" json:"date"`
    Type        string     `gorm:"size:16" json:"type"` // meal | workout | water | sleep | generic
    Title       string     `gorm:"uniqueIndex:idx_tasks_user_date_title" json:"title"`
    DueAt       time.Time  `json:"due_at"`
    Completed   bool       `json:"completed"`
    CompletedAt *time.Time `json:"completed_at"`
    CreatedAt   time.Time  `json:"created_at"`
}
