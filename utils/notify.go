package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// Notification is the outbound "notify" request emitted after a booking is
// committed. Delivery is best-effort: the booking never waits on it and never
// fails because of it.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

type Notifier interface {
	Send(n Notification) error
}

// SMTPNotifier sends notifications over plain SMTP. When the SMTP env vars
// are not configured it logs the message instead of failing, same as the
// invite-email path did.
type SMTPNotifier struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func NewSMTPNotifierFromEnv() *SMTPNotifier {
	return &SMTPNotifier{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		FromName: EnvOrDefault("SMTP_FROM_NAME", "Channel Manager"),
	}
}

func (s *SMTPNotifier) Send(n Notification) error {
	if s.Host == "" || s.Port == "" || s.Username == "" || s.Password == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%s", n.Recipient, n.Subject)
		return nil
	}

	safe := func(v string) string {
		return strings.ReplaceAll(strings.TrimSpace(v), "\r\n", " ")
	}

	from := fmt.Sprintf("%s <%s>", safe(s.FromName), s.Username)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + n.Recipient + "\r\n")
	sb.WriteString("Subject: " + safe(n.Subject) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(n.Body)

	return smtp.SendMail(addr, auth, s.Username, []string{n.Recipient}, []byte(sb.String()))
}
