package config

import (
	"log"
	"os"
	"strconv"
)

// MailerConfig holds the outbound email settings. Two transports are
// supported: plain SMTP credentials, or Gmail XOAUTH2 when the GMAIL_*
// variables are present (the refresh token is exchanged for an access
// token per send).
type MailerConfig struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string

	FromAddress string
	AdminEmail  string
	NotifyCC    string
	SiteURL     string
}

// UseGmailOAuth reports whether the Gmail XOAUTH2 transport is configured.
func (m MailerConfig) UseGmailOAuth() bool {
	return m.GmailClientID != "" && m.GmailClientSecret != "" && m.GmailRefreshToken != ""
}

// Enabled reports whether any transport is configured at all. With no
// transport the enquiry flow still works; sends are skipped with a log
// line.
func (m MailerConfig) Enabled() bool {
	return m.SMTPHost != "" || m.UseGmailOAuth()
}

// LoadMailerConfig reads mail settings from the environment.
func LoadMailerConfig() MailerConfig {
	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			port = parsed
		} else {
			log.Printf("⚠️  invalid SMTP_PORT %q, using 587", p)
		}
	}

	cfg := MailerConfig{
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          port,
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		GmailClientID:     os.Getenv("GMAIL_CLIENT_ID"),
		GmailClientSecret: os.Getenv("GMAIL_CLIENT_SECRET"),
		GmailRefreshToken: os.Getenv("GMAIL_REFRESH_TOKEN"),
		FromAddress:       getEnv("MAIL_FROM", "noreply@kkengineering.in"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "info@kkengineering.in"),
		NotifyCC:          os.Getenv("MAIL_NOTIFY_CC"),
		SiteURL:           getEnv("SITE_URL", "https://kkengineering.in"),
	}

	if !cfg.Enabled() {
		log.Println("⚠️  no mail transport configured, enquiry emails disabled")
	}
	return cfg
}
