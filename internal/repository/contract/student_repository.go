package contract

import (
	"context"

	"student-notes-be/internal/entity"
	"student-notes-be/internal/repository/specification"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error)
}
