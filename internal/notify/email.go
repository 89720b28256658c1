package notify

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

type EmailClient struct {
	host     string
	port     int
	username string
	password string
}

func NewEmailClient(host string, port int, username string, password string) *EmailClient {
	return &EmailClient{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

func (c *EmailClient) SendEmail(to string, subject string, body string) error {

	if c.username == "" {
		return errors.New("MAIL_USERNAME not configured")
	}

	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	auth := smtp.PlainAuth("", c.username, c.password, c.host)

	msg := buildMessage(c.username, to, subject, body)

	err := smtp.SendMail(addr, auth, c.username, []string{to}, msg)
	if err != nil {
		return fmt.Errorf("email gateway request failed %w", err)
	}
	return nil
}

func buildMessage(from string, to string, subject string, body string) []byte {

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
