package bootstrap

import (
	"log"

	"student-notes-be/internal/config"
	"student-notes-be/internal/controller"
	"student-notes-be/internal/pkg/logger"
	"student-notes-be/internal/pkg/mailer"
	"student-notes-be/internal/repository/unitofwork"
	"student-notes-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	StudentController controller.IStudentController
	NoteController    controller.INoteController

	// Background services (exposed for main.go to run)
	NotifierService service.INotifierService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	} else {
		log.Println("[WARN] SMTP not configured, note notifications will be skipped")
	}

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Notify.TopicName, pubSub)
	notifierService := service.NewNotifierService(
		pubSub,
		cfg.Notify.TopicName,
		uowFactory,
		emailService,
		sysLogger,
	)

	studentService := service.NewStudentService(uowFactory)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	studentController := controller.NewStudentController(studentService, sysLogger)
	noteController := controller.NewNoteController(noteService, sysLogger)

	return &Container{
		StudentController: studentController,
		NoteController:    noteController,
		NotifierService:   notifierService,
		Logger:            sysLogger,
	}
}
