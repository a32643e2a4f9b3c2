package notify

import (
	"fmt"
	"log"
)

// EmailSender formats mail bodies and hands them to a Mailer. The default
// mailer only logs; SMTP transport is deliberately out of scope.
type EmailSender struct {
	mailer Mailer
	logger *log.Logger
}

type Mailer interface {
	Send(to, subject, body string) error
}

func NewEmailSender(mailer Mailer, logger *log.Logger) *EmailSender {
	if mailer == nil {
		mailer = logMailer{logger: logger}
	}
	return &EmailSender{mailer: mailer, logger: logger}
}

func (s *EmailSender) ApplicationReceived(ev ApplicationEvent) {
	subject := fmt.Sprintf("New Application for %s", ev.JobTitle)
	body := fmt.Sprintf(
		"A new application has been received for the position: %s\n\nApplicant: %s\n\nPlease review the application in your dashboard.",
		ev.JobTitle, ev.StudentName)
	s.send(ev.RecruiterEmail, subject, body)
}

func (s *EmailSender) ApplicationStatusChanged(ev ApplicationEvent) {
	subject := fmt.Sprintf("Application Status Update - %s", ev.JobTitle)
	body := fmt.Sprintf(
		"Your application status for %s at %s has been updated.\n\nNew Status: %s",
		ev.JobTitle, ev.JobCompany, ev.Status)
	s.send(ev.StudentEmail, subject, body)
}

func (s *EmailSender) MessageReceived(ev MessageEvent) {
	// in-app messages do not generate mail
}

func (s *EmailSender) send(to, subject, body string) {
	if to == "" {
		return
	}
	if err := s.mailer.Send(to, subject, body); err != nil && s.logger != nil {
		s.logger.Printf("email send failed | to=%s subject=%q error=%v", to, subject, err)
	}
}

type logMailer struct {
	logger *log.Logger
}

func (m logMailer) Send(to, subject, body string) error {
	if m.logger != nil {
		m.logger.Printf("email | to=%s subject=%q", to, subject)
	}
	return nil
}
