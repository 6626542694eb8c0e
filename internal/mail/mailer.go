package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer delivers transactional mail (verification links). Implementations
// must be safe for concurrent use.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	Addr string
	From string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")
	if err := smtp.SendMail(m.Addr, nil, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// LogMailer writes mail to the server log instead of sending it. Used in
// dev and tests where no relay is configured.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("mail (not sent) to=%s subject=%q\n%s", to, subject, body)
	return nil
}

// New picks the SMTP mailer when a relay address is configured, else the
// log mailer.
func New(addr, from string) Mailer {
	if addr == "" {
		return LogMailer{}
	}
	return &SMTPMailer{Addr: addr, From: from}
}
