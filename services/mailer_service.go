package services

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gopkg.in/gomail.v2"

	"github.com/sjmedialabs/kkengineering-sub000/config"
	"github.com/sjmedialabs/kkengineering-sub000/models"
)

// Mailer sends the two enquiry message kinds: the auto-reply to the
// submitter and the notification to the admin mailbox. Both are
// best-effort side effects of enquiry creation; a failed send is logged
// and never surfaces to the HTTP caller.
type Mailer struct {
	cfg config.MailerConfig
}

var mailer *Mailer

// InitMailer installs the process-wide mailer.
func InitMailer(cfg config.MailerConfig) {
	mailer = &Mailer{cfg: cfg}
}

// GetMailer returns the initialized mailer, loading config from the
// environment if main never called InitMailer.
func GetMailer() *Mailer {
	if mailer == nil {
		mailer = &Mailer{cfg: config.LoadMailerConfig()}
	}
	return mailer
}

// SendEnquiryEmails dispatches both messages for a freshly-created
// enquiry. Intended to run in its own goroutine after the row is written.
func (m *Mailer) SendEnquiryEmails(e models.Enquiry) {
	if !m.cfg.Enabled() {
		log.Printf("[mail] no transport configured, skipping emails for enquiry %s", e.ID)
		return
	}
	if ok := m.sendAutoReply(e); ok {
		log.Printf("[mail] auto-reply sent to %s for enquiry %s", e.Email, e.ID)
	}
	if ok := m.sendAdminNotification(e); ok {
		log.Printf("[mail] admin notification sent for enquiry %s", e.ID)
	}
}

func (m *Mailer) sendAutoReply(e models.Enquiry) bool {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromAddress)
	msg.SetHeader("To", e.Email)
	msg.SetHeader("Subject", autoReplySubject(e))
	msg.SetBody("text/html", BuildAutoReplyHTML(e, m.cfg.SiteURL))

	if err := m.send(msg); err != nil {
		log.Printf("[mail] failed to send auto-reply to %s: %v", e.Email, err)
		return false
	}
	return true
}

func (m *Mailer) sendAdminNotification(e models.Enquiry) bool {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromAddress)
	msg.SetHeader("To", m.cfg.AdminEmail)
	if m.cfg.NotifyCC != "" {
		msg.SetHeader("Cc", m.cfg.NotifyCC)
	}
	msg.SetHeader("Subject", fmt.Sprintf("New %s enquiry from %s", e.Type, e.Name))
	msg.SetBody("text/html", BuildAdminNotificationHTML(e))

	if err := m.send(msg); err != nil {
		log.Printf("[mail] failed to send admin notification: %v", err)
		return false
	}
	return true
}

func (m *Mailer) send(msg *gomail.Message) error {
	if m.cfg.UseGmailOAuth() {
		return m.sendViaGmail(msg)
	}
	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	return d.DialAndSend(msg)
}

// sendViaGmail exchanges the stored refresh token for an access token and
// authenticates with XOAUTH2.
func (m *Mailer) sendViaGmail(msg *gomail.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conf := &oauth2.Config{
		ClientID:     m.cfg.GmailClientID,
		ClientSecret: m.cfg.GmailClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"https://mail.google.com/"},
	}
	token, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: m.cfg.GmailRefreshToken}).Token()
	if err != nil {
		return fmt.Errorf("gmail token exchange failed: %w", err)
	}

	user := m.cfg.SMTPUser
	if user == "" {
		user = m.cfg.FromAddress
	}
	d := gomail.NewDialer("smtp.gmail.com", 587, user, "")
	d.Auth = &xoauth2Auth{username: user, accessToken: token.AccessToken}
	return d.DialAndSend(msg)
}

// xoauth2Auth implements the SASL XOAUTH2 exchange Gmail expects.
type xoauth2Auth struct {
	username    string
	accessToken string
}

func (a *xoauth2Auth) Start(_ *smtp.ServerInfo) (string, []byte, error) {
	resp := "user=" + a.username + "\x01auth=Bearer " + a.accessToken + "\x01\x01"
	return "XOAUTH2", []byte(resp), nil
}

func (a *xoauth2Auth) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		// Server sent an error payload; reply with an empty line so it
		// fails the exchange cleanly.
		return []byte{}, nil
	}
	return nil, nil
}

// ═══════════════════════════════════════════════════════════
// Templates
// ═══════════════════════════════════════════════════════════

func autoReplySubject(e models.Enquiry) string {
	switch e.Type {
	case models.EnquiryTypeProduct, models.EnquiryTypeGeneralProduct:
		if e.ProductName != "" {
			return fmt.Sprintf("Thank you for your enquiry about %s", e.ProductName)
		}
		return "Thank you for your product enquiry"
	case models.EnquiryTypeBulk:
		return "Thank you for your bulk order enquiry"
	case models.EnquiryTypeService:
		return "Thank you for your service enquiry"
	default:
		return "Thank you for contacting KK Engineering"
	}
}

// BuildAutoReplyHTML composes the submitter-facing message. Product-flavored
// enquiry types carry the product rows; a general enquiry does not.
func BuildAutoReplyHTML(e models.Enquiry, siteURL string) string {
	var details strings.Builder
	switch e.Type {
	case models.EnquiryTypeProduct, models.EnquiryTypeGeneralProduct, models.EnquiryTypeBulk:
		if e.ProductName != "" {
			details.WriteString(detailRow("Product", e.ProductName))
		}
		if e.ProductCategory != "" {
			details.WriteString(detailRow("Category", e.ProductCategory))
		}
	}
	if e.Message != "" {
		details.WriteString(detailRow("Your message", e.Message))
	}

	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 0; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
      <div style="font-size: 22px; font-weight: 700; margin-bottom: 24px;">KK Engineering</div>
      <p style="font-size: 17px; margin: 0 0 16px 0;">Dear %s,</p>
      <p style="font-size: 15px; color: #444444; margin: 0 0 24px 0;">
        Thank you for reaching out. We have received your enquiry and our team will get back to you within one business day.
      </p>
      <table style="width: 100%%; border-collapse: collapse; margin-bottom: 32px;">%s</table>
      <p style="font-size: 14px; color: #626262; margin: 0 0 8px 0;">
        Meanwhile, feel free to browse our full range of screening and sieving machines:
      </p>
      <a href="%s/products" style="color: #1e40af; font-size: 14px; text-decoration: none;">%s/products</a>
      <hr style="border: 0; height: 1px; background: #e5e5e5; margin: 40px 0 16px 0;" />
      <p style="font-size: 12px; color: #999999; margin: 0;">This is an automated reply; please do not respond to this address.</p>
    </div>
  </body>
</html>`, e.Name, details.String(), siteURL, siteURL)
}

// BuildAdminNotificationHTML composes the internal notification with every
// field the submitter provided.
func BuildAdminNotificationHTML(e models.Enquiry) string {
	var details strings.Builder
	details.WriteString(detailRow("Type", e.Type))
	details.WriteString(detailRow("Name", e.Name))
	details.WriteString(detailRow("Email", e.Email))
	if e.Phone != "" {
		details.WriteString(detailRow("Phone", e.Phone))
	}
	if e.Company != "" {
		details.WriteString(detailRow("Company", e.Company))
	}
	if e.ProductName != "" {
		details.WriteString(detailRow("Product", e.ProductName))
	}
	if e.ProductCategory != "" {
		details.WriteString(detailRow("Category", e.ProductCategory))
	}
	if e.SelectedProductID != nil {
		details.WriteString(detailRow("Product ID", e.SelectedProductID.String()))
	}
	if e.Message != "" {
		details.WriteString(detailRow("Message", e.Message))
	}

	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 0; font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
      <p style="font-size: 18px; font-weight: 700; margin: 0 0 24px 0;">New website enquiry</p>
      <table style="width: 100%%; border-collapse: collapse;">%s</table>
      <p style="font-size: 12px; color: #999999; margin-top: 32px;">Received %s</p>
    </div>
  </body>
</html>`, details.String(), e.CreatedAt.Format("02 Jan 2006 15:04 MST"))
}

func detailRow(label, value string) string {
	return fmt.Sprintf(`<tr>
  <td style="padding: 8px 12px 8px 0; font-size: 13px; color: #626262; text-transform: uppercase; letter-spacing: 0.5px; vertical-align: top; white-space: nowrap;">%s</td>
  <td style="padding: 8px 0; font-size: 15px; color: #1a1a1a;">%s</td>
</tr>`, label, value)
}
