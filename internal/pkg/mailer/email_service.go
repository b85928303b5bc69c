package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPaymentReceipt(toEmail, customerName, invoiceNumber string, amountPaid, total float64) error
	SendJobCompleted(toEmail, customerName string, jobId int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendPaymentReceipt(toEmail, customerName, invoiceNumber string, amountPaid, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Receipt for invoice %s", invoiceNumber))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you, %s!</h2>
			<p>We received your payment of <strong>$%.2f</strong> on invoice <strong>%s</strong>.</p>
			<p>Invoice total: $%.2f</p>
			<p>We appreciate your business.</p>
		</div>
	`, customerName, amountPaid, invoiceNumber, total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send receipt to %s: %w", toEmail, err)
	}
	return nil
}

func (s *emailService) SendJobCompleted(toEmail, customerName string, jobId int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your vehicle is ready")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your detailing appointment (#%d) is complete and your vehicle is ready for pickup.</p>
			<p>We'd love to hear how we did!</p>
		</div>
	`, customerName, jobId)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send completion notice to %s: %w", toEmail, err)
	}
	return nil
}

// NoopEmailService is used when SMTP is not configured.
type NoopEmailService struct{}

func (NoopEmailService) SendPaymentReceipt(string, string, string, float64, float64) error {
	return nil
}

func (NoopEmailService) SendJobCompleted(string, string, int) error {
	return nil
}
