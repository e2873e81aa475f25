package service

import (
	"context"
	"encoding/json"

	"student-notes-be/internal/dto"
	"student-notes-be/internal/pkg/logger"
	"student-notes-be/internal/pkg/mailer"
	"student-notes-be/internal/repository/specification"
	"student-notes-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// INotifierService consumes note-created messages and emails everyone on the
// note's notify list. It runs in the background for the lifetime of the
// process; failures are logged and the originating request is never affected.
type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) INotifierService {
	return &notifierService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
		log:          log,
	}
}

func (s *notifierService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *notifierService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.NoteCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("notifier", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads would retry forever
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: payload.NoteId})
	if err != nil {
		s.log.Error("notifier", "failed to load note", map[string]interface{}{
			"note_id": payload.NoteId,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if note == nil {
		// Deleted between publish and delivery. Nothing to notify about.
		msg.Ack()
		return
	}

	if len(note.NotifyEmails) == 0 {
		msg.Ack()
		return
	}

	if s.emailService == nil {
		s.log.Warn("notifier", "smtp not configured, skipping notification", map[string]interface{}{
			"note_id":    note.Id,
			"recipients": len(note.NotifyEmails),
		})
		msg.Ack()
		return
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: note.StudentId})
	if err != nil {
		s.log.Error("notifier", "failed to load student", map[string]interface{}{
			"student_id": note.StudentId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	studentName := "a student"
	if student != nil {
		studentName = student.Name
	}

	for _, email := range note.NotifyEmails {
		if err := s.emailService.SendNoteNotification(email, studentName, note.TeacherName, note.Note); err != nil {
			s.log.Error("notifier", "failed to send notification email", map[string]interface{}{
				"note_id":   note.Id,
				"recipient": email,
				"error":     err.Error(),
			})
			continue
		}
		s.log.Info("notifier", "notification email sent", map[string]interface{}{
			"note_id":   note.Id,
			"recipient": email,
		})
	}

	msg.Ack()
}
