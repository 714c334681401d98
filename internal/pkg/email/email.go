package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"sort"
	"strconv"
	"strings"

	"github.com/kartavya/website/internal/app/models"
	"github.com/rs/zerolog"
)

// Notifier tells program staff about new applications.
type Notifier interface {
	NotifyApplication(app models.Application) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	// NotifyEmail receives new-application notifications.
	NotifyEmail string
	SiteName    string
}

// SMTPNotifier implements Notifier over SMTP
type SMTPNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
	send   func(to, subject, body string) error
}

// NewSMTPNotifier creates a new SMTPNotifier
func NewSMTPNotifier(config SMTPConfig, logger zerolog.Logger) *SMTPNotifier {
	n := &SMTPNotifier{
		config: config,
		logger: logger.With().Str("component", "notifier").Logger(),
	}
	n.send = n.sendHTMLEmail
	return n
}

// Configured reports whether real mail will be sent.
func (n *SMTPNotifier) Configured() bool {
	return n.config.Username != "" && n.config.Password != "" && n.config.NotifyEmail != ""
}

// NotifyApplication emails the staff inbox a summary of app. Without SMTP
// credentials the notification is only logged.
func (n *SMTPNotifier) NotifyApplication(app models.Application) error {
	if !n.Configured() {
		n.logger.Warn().
			Str("ngo_name", app.NGOName).
			Str("contact_email", app.Email).
			Msg("SMTP not configured - application notification not sent")
		return nil
	}

	subject := fmt.Sprintf("New incubator application: %s", app.NGOName)
	return n.send(n.config.NotifyEmail, subject, ApplicationBody(n.config.SiteName, app))
}

// ApplicationBody renders the HTML notification for app.
func ApplicationBody(siteName string, app models.Application) string {
	rows := []struct{ label, value string }{
		{"NGO Name", app.NGOName},
		{"Contact Person", app.ContactPerson},
		{"Email", app.Email},
		{"Phone", app.Phone},
		{"Website", app.Website},
		{"Pitch Deck", app.PitchDeckURL},
	}

	var b strings.Builder
	b.WriteString(`<html><body><div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	fmt.Fprintf(&b, `<h2 style="color: #047857;">New application to %s</h2><table>`, html.EscapeString(siteName))
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		fmt.Fprintf(&b, `<tr><td style="padding: 4px 12px 4px 0;"><strong>%s</strong></td><td>%s</td></tr>`,
			r.label, html.EscapeString(r.value))
	}
	b.WriteString(`</table><h3>Description</h3>`)
	fmt.Fprintf(&b, `<p style="white-space: pre-wrap;">%s</p>`, html.EscapeString(app.Description))
	b.WriteString(`</div></body></html>`)
	return b.String()
}

// sendHTMLEmail sends an HTML email
func (n *SMTPNotifier) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", n.config.FromName, n.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var message strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&message, "%s: %s\r\n", k, headers[k])
	}
	message.WriteString("\r\n" + htmlBody)

	serverAddress := n.config.Host + ":" + strconv.Itoa(n.config.Port)

	if !n.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, n.config.FromEmail, []string{toEmail}, []byte(message.String())); err != nil {
			n.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", serverAddress, &tls.Config{ServerName: n.config.Host})
	if err != nil {
		n.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		n.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err = client.Mail(n.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message.String())); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
