package entity

import "time"

type Note struct {
	Id           int64
	StudentId    int64
	Note         string
	TeacherName  string
	NotifyEmails []string
	CreatedAt    time.Time
}
