// Package mail sends a finalized quotation by email over SMTP.
package mail

import (
	"fmt"
	"time"

	"github.com/etnz/cotizador"
	gomail "github.com/wneessen/go-mail"
)

// sendTimeout bounds the whole SMTP exchange, dial included.
const sendTimeout = 20 * time.Second

// Message is one outgoing email. AttachmentPath is optional; when set,
// AttachmentName overrides the file name shown to the recipient.
type Message struct {
	From           string
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	AttachmentName string
}

// Send delivers the message through the configured SMTP server. It fails
// fast on an incomplete configuration before opening any connection.
func Send(cfg cotizador.SMTPConfig, msg Message) error {
	if cfg.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if msg.To == "" {
		return fmt.Errorf("recipient address is empty")
	}
	if msg.From == "" {
		return fmt.Errorf("sender address is empty")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(sendTimeout),
	}
	if cfg.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("cannot create smtp client: %w", err)
	}

	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	if msg.AttachmentPath != "" {
		name := msg.AttachmentName
		if name == "" {
			name = msg.AttachmentPath
		}
		m.AttachFile(msg.AttachmentPath, gomail.WithFileName(name))
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("sending to %s failed: %w", msg.To, err)
	}
	return nil
}

// Quotation composes the default email for a finalized quotation: subject
// and body follow the house wording, with the rendered document attached
// under a clean file name.
func Quotation(rec *cotizador.QuotationRecord, from, companyName, documentPath string) Message {
	body := fmt.Sprintf(
		"Estimado(a) %s,\n\nAdjuntamos la cotización %s solicitada.\n\nQuedamos atentos a sus comentarios.\n\nSaludos cordiales,\n%s\n",
		rec.Client.Name, rec.Number, companyName)
	return Message{
		From:           from,
		To:             rec.Client.Email,
		Subject:        "Cotización " + rec.Number,
		Body:           body,
		AttachmentPath: documentPath,
		AttachmentName: fmt.Sprintf("Cotizacion_%s.pdf", rec.Number),
	}
}
