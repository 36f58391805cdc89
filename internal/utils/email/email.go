package email

import (
	"fmt"
	"net/smtp"

	"github.com/Dan9191/credit-service/internal/config"
	"github.com/Dan9191/credit-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// SendCreditConfirmation tells the customer that their credit proposal was received
func (s *Sender) SendCreditConfirmation(to, firstName string, credit *models.Credit) error {
	e := s.creditConfirmation(to, firstName, credit)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func (s *Sender) creditConfirmation(to, firstName string, credit *models.Credit) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Credit proposal %s received", credit.CreditCode)

	body := fmt.Sprintf("Dear %s,\n\n", firstName)
	body += fmt.Sprintf(
		"We received your credit proposal %s.\n"+
			"Credit value: %s\n"+
			"Number of installments: %d\n"+
			"First installment due on: %s\n"+
			"Status: %s\n",
		credit.CreditCode, credit.CreditValue.StringFixed(2), credit.NumberOfInstallments,
		credit.DayFirstInstallment.Format(models.DateLayout), credit.Status,
	)
	body += "\nBest regards,\nCredit Service"
	e.Text = []byte(body)
	return e
}
