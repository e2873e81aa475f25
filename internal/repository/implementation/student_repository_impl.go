package implementation

import (
	"context"
	"errors"

	"student-notes-be/internal/entity"
	"student-notes-be/internal/mapper"
	"student-notes-be/internal/model"
	"student-notes-be/internal/repository/contract"
	"student-notes-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StudentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudentMapper
}

func NewStudentRepository(db *gorm.DB) contract.StudentRepository {
	return &StudentRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudentMapper(),
	}
}

func (r *StudentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StudentRepositoryImpl) Create(ctx context.Context, student *entity.Student) error {
	m := r.mapper.ToModel(student)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*student = *r.mapper.ToEntity(m)
	return nil
}

func (r *StudentRepositoryImpl) Update(ctx context.Context, student *entity.Student) error {
	m := r.mapper.ToModel(student)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*student = *r.mapper.ToEntity(m)
	return nil
}

func (r *StudentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Student{}, id).Error
}

func (r *StudentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error) {
	var m model.Student
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StudentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error) {
	var models []*model.Student
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
