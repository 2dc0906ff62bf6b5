// Package notify sends studio notification emails. Sending is best effort:
// callers log failures and carry on.
package notify

import (
	"fmt"
	"html"
	"strings"

	"github.com/princinho/estudiobackend/config"
	"github.com/princinho/estudiobackend/models"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Notifier interface {
	ContactReceived(msg models.ContactMessage) error
	OrderPlaced(order models.Order) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	dialer sender
	from   string
	to     string
}

// NewMailer returns a mailer that only logs when SMTP is not configured.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	if !cfg.Enabled() {
		zap.S().Info("SMTP not configured, notification emails disabled")
		return &Mailer{}
	}
	from := cfg.From
	if from == "" {
		from = cfg.NotifyTo
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   from,
		to:     cfg.NotifyTo,
	}
}

func (m *Mailer) send(subject, body string) error {
	if m.dialer == nil {
		zap.S().Debugw("email skipped", "subject", subject)
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return m.dialer.DialAndSend(msg)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return html.EscapeString(*s)
}

func (m *Mailer) ContactReceived(c models.ContactMessage) error {
	body := fmt.Sprintf(`<h2>Nuevo mensaje de contacto</h2>
<p><b>Nombre:</b> %s<br><b>Email:</b> %s<br><b>Teléfono:</b> %s<br><b>Tipo de consulta:</b> %s</p>
<p>%s</p>`,
		deref(c.NombreCompleto), deref(c.Email), deref(c.Telefono), deref(c.TipoConsulta), deref(c.Mensaje))
	return m.send("Nuevo mensaje de contacto", body)
}

func (m *Mailer) OrderPlaced(o models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Nuevo pedido %s</h2>", o.ID.Hex())
	fmt.Fprintf(&b, "<p>%s %s &lt;%s&gt; %s</p>",
		html.EscapeString(o.Contact.Nombre), html.EscapeString(o.Contact.Apellido),
		html.EscapeString(o.Contact.Email), html.EscapeString(o.Contact.Telefono))
	fmt.Fprintf(&b, "<p>%s, %s, %s %s</p><ul>",
		html.EscapeString(o.Shipping.Direccion), html.EscapeString(o.Shipping.Ciudad),
		html.EscapeString(o.Shipping.Provincia), html.EscapeString(o.Shipping.CodigoPostal))
	for _, it := range o.Items {
		fmt.Fprintf(&b, "<li>%d × %s (%.2f €)</li>", it.Quantity, html.EscapeString(it.Name), it.UnitPrice)
	}
	fmt.Fprintf(&b, "</ul><p><b>Total:</b> %.2f €</p>", o.TotalPrice)
	return m.send("Nuevo pedido", b.String())
}
