package unitofwork

import (
	"context"

	"student-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	StudentRepository() contract.StudentRepository
	NoteRepository() contract.NoteRepository
}
