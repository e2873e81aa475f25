package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendNoteNotification(toEmail, studentName, teacherName, note string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendNoteNotification(toEmail, studentName, teacherName, note string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New note for %s", studentName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New anecdotal note for %s</h2>
			<p><strong>%s</strong> wrote:</p>
			<blockquote style="border-left: 4px solid #4CAF50; padding-left: 10px;">%s</blockquote>
			<p>You are receiving this because you are on the note's notify list.</p>
		</div>
	`, studentName, teacherName, note)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
