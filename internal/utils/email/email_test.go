package email

import (
	"errors"
	"io"
	"net/smtp"
	"testing"
	"time"

	"github.com/Dan9191/credit-service/internal/config"
	"github.com/Dan9191/credit-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender() *Sender {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSender(&config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     "587",
		SMTPUsername: "mailer",
		SMTPPassword: "secret",
		SenderEmail:  "credits@example.com",
	}, log)
}

func testCredit() *models.Credit {
	return models.NewCredit(decimal.RequireFromString("9000.5"), time.Date(2026, 11, 19, 0, 0, 0, 0, time.UTC), 6, 1)
}

func TestSender_SendCreditConfirmation(t *testing.T) {
	s := newTestSender()
	credit := testCredit()

	var (
		sent    *email.Email
		gotAddr string
	)
	s.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		sent, gotAddr = e, addr
		assert.NotNil(t, auth)
		return nil
	}

	require.NoError(t, s.SendCreditConfirmation("antonio@hotmail.com", "Antonio", credit))
	require.NotNil(t, sent)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "credits@example.com", sent.From)
	assert.Equal(t, []string{"antonio@hotmail.com"}, sent.To)
	assert.Contains(t, sent.Subject, credit.CreditCode.String())

	body := string(sent.Text)
	assert.Contains(t, body, "Dear Antonio")
	assert.Contains(t, body, "Credit value: 9000.50")
	assert.Contains(t, body, "Number of installments: 6")
	assert.Contains(t, body, "First installment due on: 2026-11-19")
	assert.Contains(t, body, "Status: IN_PROGRESS")
}

func TestSender_SendCreditConfirmation_Failure(t *testing.T) {
	s := newTestSender()
	s.send = func(*email.Email, string, smtp.Auth) error { return errors.New("connection refused") }

	err := s.SendCreditConfirmation("antonio@hotmail.com", "Antonio", testCredit())
	assert.EqualError(t, err, "failed to send email: connection refused")
}
