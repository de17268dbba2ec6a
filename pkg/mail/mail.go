// Package mail sends transactional email over SMTP with a fluent
// builder:
//
//	mail.New().To(user.Email).Subject("Order confirmed").HTML(body).Send()
package mail

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/chitralaya/chitralaya/config"
)

// Sender delivers a built message; swapped out in tests.
type Sender interface {
	Send(m *Message) error
}

type Message struct {
	from    string
	to      []string
	subject string
	body    string
	html    bool
	sender  Sender
}

var defaultSender Sender = smtpSender{}

// SetSender overrides delivery, used by tests.
func SetSender(s Sender) { defaultSender = s }

func New() *Message {
	return &Message{from: config.MailFrom(), sender: defaultSender}
}

func (m *Message) From(addr string) *Message {
	m.from = addr
	return m
}

func (m *Message) To(addrs ...string) *Message {
	m.to = append(m.to, addrs...)
	return m
}

func (m *Message) Subject(subject string) *Message {
	m.subject = subject
	return m
}

func (m *Message) Text(body string) *Message {
	m.body = body
	m.html = false
	return m
}

func (m *Message) HTML(body string) *Message {
	m.body = body
	m.html = true
	return m
}

func (m *Message) Send() error {
	if len(m.to) == 0 {
		return errors.New("mail: no recipients")
	}
	return m.sender.Send(m)
}

// Recipients exposes the recipient list, used by test doubles.
func (m *Message) Recipients() []string { return m.to }

// SubjectLine exposes the subject, used by test doubles.
func (m *Message) SubjectLine() string { return m.subject }

// Body exposes the rendered body, used by test doubles.
func (m *Message) Body() string { return m.body }

type smtpSender struct{}

func (smtpSender) Send(m *Message) error {
	host := config.MailHost()
	addr := host + ":" + config.MailPort()

	var auth smtp.Auth
	if user := config.MailUsername(); user != "" {
		auth = smtp.PlainAuth("", user, config.MailPassword(), host)
	}

	contentType := "text/plain"
	if m.html {
		contentType = "text/html"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", m.subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\nContent-Type: %s; charset=\"UTF-8\"\r\n\r\n", contentType)
	b.WriteString(m.body)

	if err := smtp.SendMail(addr, auth, m.from, m.to, []byte(b.String())); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	return nil
}
