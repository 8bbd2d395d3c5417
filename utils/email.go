package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration read from the environment.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func loadEmailConfig() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendDonationReceipt emails a receipt for a confirmed donation. Callers
// treat it as best-effort: the ledger write has already happened and a
// mail failure never affects the webhook acknowledgment.
func SendDonationReceipt(to, donorName string, amountPaise int64, paymentID string) error {
	config := loadEmailConfig()
	if config.Host == "" {
		return fmt.Errorf("smtp not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Thank you for your donation")

	body := fmt.Sprintf(`
		<h2>Donation received</h2>
		<p>Dear %s,</p>
		<p>We have received your donation of <b>₹%.2f</b>.</p>
		<p>Payment reference: %s</p>
		<p>Your contribution appears on our public ledger. Thank you for your support.</p>
	`, donorName, float64(amountPaise)/100, paymentID)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
