package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/vengerka/cakemaster-api/app/models"
	"github.com/vengerka/cakemaster-api/app/utils/format"
)

type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailConfig
}

func NewMailer(cfg MailConfig) *Mailer {
	return &Mailer{
		config: cfg,
	}
}

func (m *Mailer) SendHTMLEmail(to, subject, htmlBody string) error {

	headers := map[string]string{
		"From":         m.config.From,
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"UTF-8\"",
	}

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth(m.config.From, m.config.Username, m.config.Password, m.config.Host)

	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	if err != nil {
		log.Printf("Failed to send HTML email to %s: %v", to, err)
		return fmt.Errorf("failed to send HTML email: %w", err)
	}

	return nil
}

func BuildOrderEmailBody(order *models.Order) string {
	shape := order.Shape
	if shape == "" {
		shape = "N/A"
	}
	plaque := order.PlaqueText
	if plaque == "" {
		plaque = "N/A"
	}
	return fmt.Sprintf(`
        <h1>New Order Details</h1>
        <p><strong>Order ID:</strong> %s</p>
        <p><strong>Flavor:</strong> %s</p>
        <p><strong>Size:</strong> %s</p>
        <p><strong>Shape:</strong> %s</p>
        <p><strong>Plaque text:</strong> %s</p>
        <p><strong>Pickup date:</strong> %s</p>
        <p><strong>Price:</strong> %s</p>
        <p><strong>Variable symbol:</strong> %s</p>
    `, order.ID, order.Flavor, order.Size, shape, plaque, order.PickupDate,
		format.CZK(order.Amount), VariableSymbol(order.ID))
}

func BuildContactEmailBody(message *models.ContactMessage) string {
	return fmt.Sprintf(`
        <h2>Nová zpráva</h2>
        <p><strong>Jméno:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Předmět:</strong> %s</p>
        <p><strong>Zpráva:</strong><br/>%s</p>
    `, message.Name, message.Email, message.Subject, message.Message)
}

// Notifier receives fully-formed records; delivery is fire-and-forget and
// failures are only logged, never surfaced to the buyer.
type Notifier interface {
	NotifyNewOrder(order *models.Order) error
	NotifyContactMessage(message *models.ContactMessage) error
}

type EmailNotifier struct {
	mailer     *Mailer
	adminEmail string
}

func NewEmailNotifier(mailer *Mailer, adminEmail string) *EmailNotifier {
	return &EmailNotifier{mailer: mailer, adminEmail: adminEmail}
}

func (n *EmailNotifier) NotifyNewOrder(order *models.Order) error {
	subject := fmt.Sprintf("New Cake Order Received: %s", order.ID)
	return n.mailer.SendHTMLEmail(n.adminEmail, subject, BuildOrderEmailBody(order))
}

func (n *EmailNotifier) NotifyContactMessage(message *models.ContactMessage) error {
	return n.mailer.SendHTMLEmail(n.adminEmail, "📩 Nová zpráva z kontaktního formuláře", BuildContactEmailBody(message))
}
