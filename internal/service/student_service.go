package service

import (
	"context"
	"strings"
	"time"

	"student-notes-be/internal/dto"
	"student-notes-be/internal/entity"
	"student-notes-be/internal/pkg/apperror"
	"student-notes-be/internal/repository/specification"
	"student-notes-be/internal/repository/unitofwork"
)

type IStudentService interface {
	GetAll(ctx context.Context) ([]*dto.StudentResponse, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStudentService(uowFactory unitofwork.RepositoryFactory) IStudentService {
	return &studentService{
		uowFactory: uowFactory,
	}
}

func (s *studentService) GetAll(ctx context.Context) ([]*dto.StudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	students, err := uow.StudentRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.StudentResponse, 0, len(students))
	for _, student := range students {
		result = append(result, toStudentResponse(student))
	}
	return result, nil
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	name := strings.TrimSpace(req.Name)
	grade := strings.TrimSpace(req.Grade)
	if name == "" {
		return nil, apperror.NewValidation("name is required")
	}
	if grade == "" {
		return nil, apperror.NewValidation("grade is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	student := entity.Student{
		Name:      name,
		Grade:     grade,
		CreatedAt: time.Now(),
	}

	if err := uow.StudentRepository().Create(ctx, &student); err != nil {
		return nil, err
	}

	return toStudentResponse(&student), nil
}

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	name := strings.TrimSpace(req.Name)
	grade := strings.TrimSpace(req.Grade)
	if name == "" {
		return nil, apperror.NewValidation("name is required")
	}
	if grade == "" {
		return nil, apperror.NewValidation("grade is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFound("student not found")
	}

	// Full replacement; id and created_at are immutable.
	student.Name = name
	student.Grade = grade

	if err := uow.StudentRepository().Update(ctx, student); err != nil {
		return nil, err
	}

	return toStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NewNotFound("student not found")
	}

	// The student's notes go with it via the ON DELETE CASCADE constraint.
	return uow.StudentRepository().Delete(ctx, id)
}

func toStudentResponse(student *entity.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		Id:        student.Id,
		Name:      student.Name,
		Grade:     student.Grade,
		CreatedAt: student.CreatedAt,
	}
}
