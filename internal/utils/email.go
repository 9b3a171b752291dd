package utils

import (
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// Mailer abstrait l'envoi d'e-mails pour pouvoir le stubber en test
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer envoie via le serveur SMTP configuré dans .env
type SMTPMailer struct{}

func (SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat("JoedankBeats", "noreply@joedankbeats.com"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "ssl0.ovh.net"
	}

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}
