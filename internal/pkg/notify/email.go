// Package notify envia mensagens por email (SMTP) e WhatsApp (Twilio).
package notify

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const emailTemplate = `<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      %s
      <hr style="border: 1px solid #ddd; margin-top: 20px;">
      <p style="color: #999; font-size: 12px;">
        Este é um email automático. Não responda este email.
      </p>
    </div>
  </body>
</html>`

// SendMailFunc tem a assinatura de smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender entrega emails HTML por um servidor SMTP com autenticação PLAIN.
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
	sendMail SendMailFunc
	now      func() time.Time
}

// NewSMTPSender cria o remetente. from vazio usa o próprio usuário SMTP.
func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	if from == "" {
		from = user
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

// WithSendMail substitui a função de envio.
func (s *SMTPSender) WithSendMail(fn SendMailFunc) *SMTPSender {
	s.sendMail = fn
	return s
}

// SendEmail envia o email e devolve o Message-ID gerado.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	msg := BuildMessage(s.from, to, subject, body, messageID, s.now())

	addr := s.host + ":" + strconv.Itoa(s.port)
	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	if err := s.sendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return "", fmt.Errorf("falha no envio SMTP: %w", err)
	}
	return messageID, nil
}

// BuildMessage monta a mensagem MIME em HTML. Quebras de linha do corpo viram <br>.
func BuildMessage(from, to, subject, body, messageID string, date time.Time) []byte {
	html := fmt.Sprintf(emailTemplate, strings.ReplaceAll(body, "\n", "<br>"))

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("Message-ID: " + messageID + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)
	return []byte(b.String())
}
