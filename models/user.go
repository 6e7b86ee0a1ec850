package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email         string `gorm:"uniqueIndex;not null"`
    Password      string `gorm:"not null"`
    FullName      string
    Timezone      string `gorm:"size:64;default:'Asia/Kolkata'"`
    PhotoURL      string `gorm:"type:text"` // stored reference, opaque to the planner
    ResetToken    string
    ResetTokenExp time.Time
}
