package service

import (
	"context"
	"sort"
	"time"

	"student-notes-be/internal/entity"
	"student-notes-be/internal/repository/contract"
	"student-notes-be/internal/repository/specification"
	"student-notes-be/internal/repository/unitofwork"
)

// In-memory doubles for the repository layer. They interpret the same
// specifications the gorm implementations receive, so service logic is
// exercised against the contract rather than against SQL.

type memStore struct {
	students      []*entity.Student
	notes         []*entity.Note
	nextStudentId int64
	nextNoteId    int64

	begins    int
	commits   int
	rollbacks int
}

func newMemStore() *memStore {
	return &memStore{nextStudentId: 1, nextNoteId: 1}
}

type memFactory struct {
	store *memStore
}

func newMemFactory() *memFactory {
	return &memFactory{store: newMemStore()}
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUnitOfWork{store: f.store}
}

type memUnitOfWork struct {
	store *memStore
}

func (u *memUnitOfWork) Begin(ctx context.Context) error {
	u.store.begins++
	return nil
}

func (u *memUnitOfWork) Commit() error {
	u.store.commits++
	return nil
}

func (u *memUnitOfWork) Rollback() error {
	u.store.rollbacks++
	return nil
}

func (u *memUnitOfWork) StudentRepository() contract.StudentRepository {
	return &memStudentRepository{store: u.store}
}

func (u *memUnitOfWork) NoteRepository() contract.NoteRepository {
	return &memNoteRepository{store: u.store}
}

type memStudentRepository struct {
	store *memStore
}

func (r *memStudentRepository) Create(ctx context.Context, student *entity.Student) error {
	student.Id = r.store.nextStudentId
	r.store.nextStudentId++
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now()
	}
	copied := *student
	r.store.students = append(r.store.students, &copied)
	return nil
}

func (r *memStudentRepository) Update(ctx context.Context, student *entity.Student) error {
	for i, s := range r.store.students {
		if s.Id == student.Id {
			copied := *student
			r.store.students[i] = &copied
			return nil
		}
	}
	copied := *student
	r.store.students = append(r.store.students, &copied)
	return nil
}

func (r *memStudentRepository) Delete(ctx context.Context, id int64) error {
	kept := r.store.students[:0]
	for _, s := range r.store.students {
		if s.Id != id {
			kept = append(kept, s)
		}
	}
	r.store.students = kept

	// mirror the database cascade
	keptNotes := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.StudentId != id {
			keptNotes = append(keptNotes, n)
		}
	}
	r.store.notes = keptNotes
	return nil
}

func (r *memStudentRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error) {
	for _, s := range r.store.students {
		if studentMatches(s, specs) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memStudentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error) {
	var result []*entity.Student
	for _, s := range r.store.students {
		if studentMatches(s, specs) {
			copied := *s
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func studentMatches(s *entity.Student, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			if s.Id != v.ID {
				return false
			}
		}
	}
	return true
}

type memNoteRepository struct {
	store *memStore
}

func (r *memNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	note.Id = r.store.nextNoteId
	r.store.nextNoteId++
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	copied := *note
	r.store.notes = append(r.store.notes, &copied)
	return nil
}

func (r *memNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	for i, n := range r.store.notes {
		if n.Id == note.Id {
			copied := *note
			r.store.notes[i] = &copied
			return nil
		}
	}
	copied := *note
	r.store.notes = append(r.store.notes, &copied)
	return nil
}

func (r *memNoteRepository) Delete(ctx context.Context, id int64) error {
	kept := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	r.store.notes = kept
	return nil
}

func (r *memNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			copied := *n
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var result []*entity.Note
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			copied := *n
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			if n.Id != v.ID {
				return false
			}
		case specification.ByStudentID:
			if n.StudentId != v.StudentID {
				return false
			}
		}
	}
	return true
}

// recordingPublisher captures published payloads.
type recordingPublisher struct {
	published [][]byte
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
