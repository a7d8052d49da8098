package utils

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
}

func NewMailer(host, port, user, password string) (*Mailer, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, errors.Wrap(err, "invalid SMTP port")
	}
	return &Mailer{host: host, port: p, user: user, password: password}, nil
}

// SendResetCodeEmail delivers a password reset code.
func (m *Mailer) SendResetCodeEmail(email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password Reset Code")
	msg.SetBody("text/plain", "Your password reset code is: "+code)

	return m.send(msg)
}

// SendAppointmentReminder delivers an appointment reminder to the patient.
func (m *Mailer) SendAppointmentReminder(email, patientName, date, startTime string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Appointment Reminder")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nThis is a reminder for your dental appointment on %s at %s.\n\nIf you cannot make it, please call the office to reschedule.",
		patientName, date, startTime,
	))

	return m.send(msg)
}

func (m *Mailer) send(msg *gomail.Message) error {
	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send email")
	}
	return nil
}
