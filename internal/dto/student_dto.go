package dto

import "time"

type CreateStudentRequest struct {
	Name  string `json:"name" validate:"required"`
	Grade string `json:"grade" validate:"required"`
}

type UpdateStudentRequest struct {
	Name  string `json:"name" validate:"required"`
	Grade string `json:"grade" validate:"required"`
}

type StudentResponse struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteStudentResponse struct {
	Message string `json:"message"`
}
