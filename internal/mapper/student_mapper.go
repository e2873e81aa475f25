package mapper

import (
	"student-notes-be/internal/entity"
	"student-notes-be/internal/model"
)

type StudentMapper struct{}

func NewStudentMapper() *StudentMapper {
	return &StudentMapper{}
}

func (m *StudentMapper) ToEntity(s *model.Student) *entity.Student {
	if s == nil {
		return nil
	}

	return &entity.Student{
		Id:        s.Id,
		Name:      s.Name,
		Grade:     s.Grade,
		CreatedAt: s.CreatedAt,
	}
}

func (m *StudentMapper) ToModel(s *entity.Student) *model.Student {
	if s == nil {
		return nil
	}

	return &model.Student{
		Id:        s.Id,
		Name:      s.Name,
		Grade:     s.Grade,
		CreatedAt: s.CreatedAt,
	}
}

func (m *StudentMapper) ToEntities(students []*model.Student) []*entity.Student {
	entities := make([]*entity.Student, len(students))
	for i, s := range students {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
