// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"strings"

	"landivo-be/internal/pkg/apperror"

	"gopkg.in/gomail.v2"
)

// DeletionApprovalEmail carries everything needed to render the admin
// approval request. ApprovalURL embeds the single-use token.
type DeletionApprovalEmail struct {
	PropertyAddress string
	PropertyID      string
	PropertyStatus  string
	AskingPrice     float64
	Reason          string
	RequestedBy     string
	ApprovalURL     string
	ExpiresInHours  int
}

type OfferAlertEmail struct {
	PropertyAddress string
	BuyerName       string
	BuyerEmail      string
	OfferedPrice    float64
}

type IEmailService interface {
	SendDeletionApprovalRequest(toEmail string, payload DeletionApprovalEmail) error
	SendBulkDeletionApprovalRequest(toEmail string, addresses []string, payload DeletionApprovalEmail) error
	SendOfferAlert(toEmail string, payload OfferAlertEmail) error
	SendResetToken(toEmail, token string) error
	SendCampaignEmail(toEmail, subject, htmlBody string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) send(m *gomail.Message, toEmail string) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		return &apperror.DeliveryError{Recipient: toEmail, Err: err}
	}
	return nil
}

func (s *emailService) SendDeletionApprovalRequest(toEmail string, p DeletionApprovalEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Property Deletion Request - %s", p.PropertyAddress))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background-color: #324c48; color: white; padding: 20px; text-align: center;">
				<h1 style="margin: 0;">Property Deletion Request</h1>
			</div>
			<div style="padding: 20px; background-color: #f9f9f9;">
				<p><strong>A property deletion request has been submitted and requires your approval.</strong></p>
				<div style="background-color: white; padding: 15px; border-radius: 8px; margin: 20px 0;">
					<h3 style="margin-top: 0; color: #324c48;">Property Details</h3>
					<p><strong>Address:</strong> %s</p>
					<p><strong>Property ID:</strong> %s</p>
					<p><strong>Status:</strong> %s</p>
					<p><strong>Asking Price:</strong> $%.2f</p>
					<p><strong>Requested By:</strong> %s</p>
					<p><strong>Reason:</strong> %s</p>
				</div>
				<a href="%s" style="background-color: #c62828; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">Approve Deletion</a>
				<p>Or copy this link:</p>
				<p>%s</p>
				<p>This link will expire in %d hours. If you do not want this property deleted, no action is required.</p>
			</div>
		</div>
	`, p.PropertyAddress, p.PropertyID, p.PropertyStatus, p.AskingPrice, p.RequestedBy, p.Reason, p.ApprovalURL, p.ApprovalURL, p.ExpiresInHours)

	m.SetBody("text/html", body)
	return s.send(m, toEmail)
}

func (s *emailService) SendBulkDeletionApprovalRequest(toEmail string, addresses []string, p DeletionApprovalEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Bulk Property Deletion Request (%d properties)", len(addresses)))

	items := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		items = append(items, fmt.Sprintf("<li>%s</li>", addr))
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<div style="background-color: #324c48; color: white; padding: 20px; text-align: center;">
				<h1 style="margin: 0;">Bulk Property Deletion Request</h1>
			</div>
			<div style="padding: 20px; background-color: #f9f9f9;">
				<p><strong>%s</strong> requested deletion of the following %d properties:</p>
				<ul>%s</ul>
				<p><strong>Reason:</strong> %s</p>
				<a href="%s" style="background-color: #c62828; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">Approve All Deletions</a>
				<p>This link will expire in %d hours.</p>
			</div>
		</div>
	`, p.RequestedBy, len(addresses), strings.Join(items, ""), p.Reason, p.ApprovalURL, p.ExpiresInHours)

	m.SetBody("text/html", body)
	return s.send(m, toEmail)
}

func (s *emailService) SendOfferAlert(toEmail string, p OfferAlertEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Offer - %s", p.PropertyAddress))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Offer Received</h2>
			<p><strong>%s</strong> (%s) offered <strong>$%.2f</strong> for:</p>
			<p>%s</p>
		</div>
	`, p.BuyerName, p.BuyerEmail, p.OfferedPrice, p.PropertyAddress)

	m.SetBody("text/html", body)
	return s.send(m, toEmail)
}

func (s *emailService) SendResetToken(toEmail, resetLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset Your Password")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #324c48; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)

	m.SetBody("text/html", body)
	return s.send(m, toEmail)
}

func (s *emailService) SendCampaignEmail(toEmail, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.send(m, toEmail)
}
