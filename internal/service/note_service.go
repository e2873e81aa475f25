package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"student-notes-be/internal/dto"
	"student-notes-be/internal/entity"
	"student-notes-be/internal/pkg/apperror"
	"student-notes-be/internal/pkg/logger"
	"student-notes-be/internal/repository/specification"
	"student-notes-be/internal/repository/unitofwork"
	"student-notes-be/pkg/utils"
)

type INoteService interface {
	GetAllByStudent(ctx context.Context, studentId int64) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, studentId int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, studentId, noteId int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, studentId, noteId int64) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *noteService) GetAllByStudent(ctx context.Context, studentId int64) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// No existence check on read: an unknown student simply has no notes.
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, toNoteResponse(note))
	}
	return result, nil
}

func (s *noteService) Create(ctx context.Context, studentId int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	text := strings.TrimSpace(req.Note)
	if text == "" {
		return nil, apperror.NewValidation("note is required")
	}

	// The existence check and the insert run inside one transaction so a
	// student deleted in between cannot leave an orphan note behind.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if student == nil {
		uow.Rollback()
		return nil, apperror.NewNotFound("student not found")
	}

	note := entity.Note{
		StudentId:    studentId,
		Note:         text,
		TeacherName:  utils.TeacherNameOrDefault(req.TeacherName),
		NotifyEmails: utils.NormalizeEmails(req.NotifyEmails),
		CreatedAt:    time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishNoteCreated(ctx, note.Id)

	return toNoteResponse(&note), nil
}

// publishNoteCreated hands the note off to the notification pipeline.
// Notification is auxiliary: a publish failure is logged, never surfaced.
func (s *noteService) publishNoteCreated(ctx context.Context, noteId int64) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.NoteCreatedMessage{NoteId: noteId})
	if err != nil {
		s.log.Warn("note", "failed to marshal note created message", map[string]interface{}{
			"note_id": noteId,
			"error":   err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("note", "failed to publish note created message", map[string]interface{}{
			"note_id": noteId,
			"error":   err.Error(),
		})
	}
}

func (s *noteService) Update(ctx context.Context, studentId, noteId int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	text := strings.TrimSpace(req.Note)
	if text == "" {
		return nil, apperror.NewValidation("note is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.ByStudentID{StudentID: studentId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NewNotFound("note not found")
	}

	// Only the note text is updatable; teacher and notify list are fixed
	// at creation.
	note.Note = text

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, studentId, noteId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.ByStudentID{StudentID: studentId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NewNotFound("note not found")
	}

	return uow.NoteRepository().Delete(ctx, note.Id)
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:           note.Id,
		StudentId:    note.StudentId,
		Note:         note.Note,
		TeacherName:  note.TeacherName,
		NotifyEmails: note.NotifyEmails,
		CreatedAt:    note.CreatedAt,
	}
}
