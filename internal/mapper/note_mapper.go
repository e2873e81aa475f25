package mapper

import (
	"student-notes-be/internal/entity"
	"student-notes-be/internal/model"

	"github.com/lib/pq"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	// pq.StringArray scans as nil for empty arrays on some drivers;
	// entities always carry a non-nil slice.
	emails := []string(n.NotifyEmails)
	if emails == nil {
		emails = []string{}
	}

	return &entity.Note{
		Id:           n.Id,
		StudentId:    n.StudentId,
		Note:         n.Note,
		TeacherName:  n.TeacherName,
		NotifyEmails: emails,
		CreatedAt:    n.CreatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:           n.Id,
		StudentId:    n.StudentId,
		Note:         n.Note,
		TeacherName:  n.TeacherName,
		NotifyEmails: pq.StringArray(n.NotifyEmails),
		CreatedAt:    n.CreatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
