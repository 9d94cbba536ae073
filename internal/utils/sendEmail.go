package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"unityeats/internal/config"
)

type MailConfig struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	Sender   string
}

func LoadMailConfig(cfg *config.Config) MailConfig {
	return MailConfig{
		SMTPHost: cfg.SMTPHost,
		SMTPPort: cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		Sender:   cfg.SMTPSender,
	}
}

func SendEmail(config MailConfig, recipient, subject, message string) error {
	smtpAddr := config.SMTPHost + ":" + config.SMTPPort

	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: config.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err = client.Mail(config.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		config.Sender, recipient, subject, message)
	if _, err = writer.Write([]byte(body)); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close message body: %w", err)
	}

	return client.Quit()
}
