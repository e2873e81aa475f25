package dto

import "time"

type CreateNoteRequest struct {
	Note         string   `json:"note" validate:"required"`
	TeacherName  string   `json:"teacher_name"`
	NotifyEmails []string `json:"notify_emails"`
}

type UpdateNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

type NoteResponse struct {
	Id           int64     `json:"id"`
	StudentId    int64     `json:"student_id"`
	Note         string    `json:"note"`
	TeacherName  string    `json:"teacher_name"`
	NotifyEmails []string  `json:"notify_emails"`
	CreatedAt    time.Time `json:"created_at"`
}

type DeleteNoteResponse struct {
	Message string `json:"message"`
}

// NoteCreatedMessage is the payload published on the notification topic
// whenever a note is created.
type NoteCreatedMessage struct {
	NoteId int64 `json:"note_id"`
}
