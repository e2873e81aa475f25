package model

import (
	"time"

	"github.com/lib/pq"
)

type Note struct {
	Id           int64          `gorm:"primaryKey;autoIncrement"`
	StudentId    int64          `gorm:"not null;index"`
	Note         string         `gorm:"type:text;not null"`
	TeacherName  string         `gorm:"type:text;not null;default:Unknown"`
	NotifyEmails pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`

	// Belongs-to association so AutoMigrate emits the cascade FK.
	Student *Student `gorm:"foreignKey:StudentId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
