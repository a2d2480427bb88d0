// Package sender содержит сервис отправки писем: напоминание о продлении
// подписки и проверочное письмо для диагностики SMTP-настроек.
package sender

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/cutoffnow/cutoff-backend/internal/lib/sl"
	"github.com/cutoffnow/cutoff-backend/internal/lib/smtp"
	"github.com/cutoffnow/cutoff-backend/internal/models"
)

// Service собирает письма и отправляет их через SMTP транспорт.
type Service struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(transport smtp.TransportInterface, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// SendReminder отправляет владельцу записи письмо о скором продлении.
func (s *Service) SendReminder(rec models.Record, daysLeft int) error {
	subject := fmt.Sprintf("Reminder: %s renews in %d day(s)!", rec.Name, daysLeft)
	body := fmt.Sprintf(
		"Hi there,\n\n"+
			"Your subscription is about to renew:\n\n"+
			"  Subscription: %s\n"+
			"  Platform: %s\n"+
			"  Start Date: %s\n"+
			"  End Date: %s\n"+
			"  Email: %s\n"+
			"  Mobile: %s\n\n"+
			"%d day(s) left until renewal. Take action if needed.\n\n"+
			"Thank you,\nCutoff Team",
		rec.Name, rec.Platform, rec.StartDate, rec.EndDate,
		rec.ContactEmail, rec.Mobile, daysLeft)

	return s.sendEmail([]string{rec.OwnerEmail}, subject, body)
}

// SendTest отправляет проверочное письмо на собственный адрес отправителя.
func (s *Service) SendTest() error {
	return s.sendEmail(
		[]string{s.transport.From()},
		"SMTP test",
		"Your email setup works.",
	)
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.From(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.From()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.From(), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}
