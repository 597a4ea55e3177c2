package mailer

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer dispatches transactional mail to the external email collaborator
type Mailer interface {
	SendApplicationReceived(to, applicationID string) error
	SendApplicationAccepted(to, applicationID string) error
	SendPasswordResetOTP(to, otp string) error
}

// SMTPMailer implements Mailer over a plain SMTP account
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates an SMTPMailer from the mail account configuration
func NewSMTPMailer(host, port, user, password, from string) (*SMTPMailer, error) {
	p, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %w", port, err)
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, p, user, password),
		from:   from,
	}, nil
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// SendApplicationReceived notifies an applicant that their application arrived
func (m *SMTPMailer) SendApplicationReceived(to, applicationID string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h2 style="color: #0056b3;">Application Successful!</h2>
			<p>Dear applicant,</p>
			<p>We are pleased to inform you that your application for an <b>aeIluminate Alumni Account</b> has been received successfully.</p>
			<p><strong>Application ID:</strong> %s</p>
			<p>Please wait for further notifications regarding your account application. The verification process typically takes up to <strong>3 working days</strong>.</p>
			<br/>
			<p>Best regards,</p>
			<p>The aeIluminate Team</p>
		</div>`, applicationID)
	return m.send(to, "Application Successful: aeIluminate Alumni Account", body)
}

// SendApplicationAccepted notifies an applicant that their account is active
func (m *SMTPMailer) SendApplicationAccepted(to, applicationID string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h2 style="color: #0056b3;">Welcome to aeIluminate Alumni</h2>
			<p>Dear user,</p>
			<p>We are pleased to inform you that your application for the aeIluminate Alumni Account has been <strong>accepted</strong>!</p>
			<p><strong>Application ID:</strong> %s</p>
			<p>You can now access your alumni account and explore the various features we offer.</p>
			<br/>
			<p>Best regards,</p>
			<p>The aeIluminate Team</p>
		</div>`, applicationID)
	return m.send(to, "Congratulations! Your Application Has Been Accepted", body)
}

// SendPasswordResetOTP delivers the recovery code for a password reset
func (m *SMTPMailer) SendPasswordResetOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h2 style="color: #0056b3;">Reset Your Password</h2>
			<p>Dear user,</p>
			<p>You have requested to reset your password. Please use the OTP (One-Time Password) below to complete the process:</p>
			<h3 style="color: #0056b3; text-align: center;">%s</h3>
			<p>This OTP is valid for <strong>10 minutes</strong>. If you did not request this, please ignore this email.</p>
			<br/>
			<p>Best regards,</p>
			<p>The aeIluminate Team</p>
		</div>`, otp)
	return m.send(to, "Password Reset Request: Your OTP Code", body)
}
