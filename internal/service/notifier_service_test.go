package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"student-notes-be/internal/dto"
	"student-notes-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEmailService captures notification sends, optionally failing
// specific recipients.
type recordingEmailService struct {
	mu      sync.Mutex
	sent    []string
	failFor map[string]error
}

func (s *recordingEmailService) SendNoteNotification(toEmail, studentName, teacherName, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failFor[toEmail]; ok {
		return err
	}
	s.sent = append(s.sent, toEmail)
	return nil
}

func (s *recordingEmailService) sentTo() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

func seedNotifiedNote(t *testing.T, factory *memFactory, emails []string) *entity.Note {
	t.Helper()
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	student := &entity.Student{Name: "Alex", Grade: "10", CreatedAt: time.Now()}
	require.NoError(t, uow.StudentRepository().Create(ctx, student))

	note := &entity.Note{
		StudentId:    student.Id,
		Note:         "Great participation",
		TeacherName:  "Ms. Lopez",
		NotifyEmails: emails,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))
	return note
}

func noteCreatedMessage(t *testing.T, noteId int64) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.NoteCreatedMessage{NoteId: noteId})
	require.NoError(t, err)
	return message.NewMessage(uuid.NewString(), payload)
}

func assertAcked(t *testing.T, msg *message.Message) {
	t.Helper()
	select {
	case <-msg.Acked():
	default:
		t.Fatal("message was not acked")
	}
}

func TestNotifierServiceProcessMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("emails every recipient on the notify list", func(t *testing.T) {
		factory := newMemFactory()
		note := seedNotifiedNote(t, factory, []string{"a@x.com", "b@y.com"})
		emails := &recordingEmailService{}
		svc := &notifierService{uowFactory: factory, emailService: emails, log: nopLogger{}}

		msg := noteCreatedMessage(t, note.Id)
		svc.processMessage(ctx, msg)

		assertAcked(t, msg)
		assert.Equal(t, []string{"a@x.com", "b@y.com"}, emails.sentTo())
	})

	t.Run("one failing recipient does not stop the rest", func(t *testing.T) {
		factory := newMemFactory()
		note := seedNotifiedNote(t, factory, []string{"a@x.com", "b@y.com"})
		emails := &recordingEmailService{failFor: map[string]error{"a@x.com": assert.AnError}}
		svc := &notifierService{uowFactory: factory, emailService: emails, log: nopLogger{}}

		msg := noteCreatedMessage(t, note.Id)
		svc.processMessage(ctx, msg)

		assertAcked(t, msg)
		assert.Equal(t, []string{"b@y.com"}, emails.sentTo())
	})

	t.Run("note deleted before delivery is acked without sending", func(t *testing.T) {
		factory := newMemFactory()
		emails := &recordingEmailService{}
		svc := &notifierService{uowFactory: factory, emailService: emails, log: nopLogger{}}

		msg := noteCreatedMessage(t, 999)
		svc.processMessage(ctx, msg)

		assertAcked(t, msg)
		assert.Empty(t, emails.sentTo())
	})

	t.Run("empty notify list is acked without sending", func(t *testing.T) {
		factory := newMemFactory()
		note := seedNotifiedNote(t, factory, []string{})
		emails := &recordingEmailService{}
		svc := &notifierService{uowFactory: factory, emailService: emails, log: nopLogger{}}

		msg := noteCreatedMessage(t, note.Id)
		svc.processMessage(ctx, msg)

		assertAcked(t, msg)
		assert.Empty(t, emails.sentTo())
	})

	t.Run("unconfigured smtp is acked without sending", func(t *testing.T) {
		factory := newMemFactory()
		note := seedNotifiedNote(t, factory, []string{"a@x.com"})
		svc := &notifierService{uowFactory: factory, emailService: nil, log: nopLogger{}}

		msg := noteCreatedMessage(t, note.Id)
		svc.processMessage(ctx, msg)

		assertAcked(t, msg)
	})

	t.Run("invalid payload is acked", func(t *testing.T) {
		factory := newMemFactory()
		svc := &notifierService{uowFactory: factory, log: nopLogger{}}

		msg := message.NewMessage(uuid.NewString(), []byte("{"))
		svc.processMessage(ctx, msg)

		assertAcked(t, msg)
	})
}

func TestNotifierServiceConsume(t *testing.T) {
	ctx := context.Background()
	factory := newMemFactory()
	note := seedNotifiedNote(t, factory, []string{"a@x.com", "b@y.com"})
	emails := &recordingEmailService{}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService("NOTE_CREATED", pubSub)
	notifier := NewNotifierService(pubSub, "NOTE_CREATED", factory, emails, nopLogger{})
	require.NoError(t, notifier.Consume(ctx))

	payload, err := json.Marshal(dto.NoteCreatedMessage{NoteId: note.Id})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	require.Eventually(t, func() bool {
		return len(emails.sentTo()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"a@x.com", "b@y.com"}, emails.sentTo())
}
