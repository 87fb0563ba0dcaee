package email

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

func sanitizer() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// InquiryEmailData is what the agency inbox sees for one contact-form inquiry.
type InquiryEmailData struct {
	FullName     string
	Email        string
	BusinessName string
	Phone        string
	Service      string
	BudgetRange  string
	Message      string
	SubmittedAt  time.Time
	RequestID    string
	AppName      string
}

// InquirySubject renders "New Inquiry: <service> from <name>", using
// "General" when no service was chosen.
func InquirySubject(service, fullName string) string {
	service = singleLine(service)
	if service == "" {
		service = "General"
	}
	return fmt.Sprintf("New Inquiry: %s from %s", service, singleLine(fullName))
}

// BuildInquiryNotification creates the notification sent to the agency inbox.
// Every submitted value is stripped of markup before it is placed in the
// HTML body.
func BuildInquiryNotification(to string, data InquiryEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Floxenta"
	}

	submitted := data.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}
	when := submitted.UTC().Format("January 2, 2006 at 3:04 PM MST")

	businessName := orNotProvided(data.BusinessName)
	phone := orNotProvided(data.Phone)

	textBody := fmt.Sprintf(`New inquiry from the %s website

Name: %s
Email: %s
Business: %s
Phone: %s
Service: %s
Budget: %s
Submitted: %s

Message:
%s
`, appName, data.FullName, data.Email, businessName, phone, data.Service, data.BudgetRange, when, data.Message)

	if data.RequestID != "" {
		textBody += "\nRequest ID: " + data.RequestID + "\n"
	}

	p := sanitizer()
	message := strings.ReplaceAll(p.Sanitize(data.Message), "\n", "<br>\n")

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">New Inquiry from %s Website</h2>
    <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px;">
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
        <p><strong>Business:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Service:</strong> %s</p>
        <p><strong>Budget:</strong> %s</p>
        <p><strong>Submitted:</strong> %s</p>
    </div>
    <h3>Message:</h3>
    <p style="border-left: 4px solid #2563eb; padding-left: 15px;">%s</p>
    <p style="color: #6b7280; font-size: 12px; margin-top: 30px;">%s</p>
</body>
</html>`,
		p.Sanitize(appName),
		p.Sanitize(data.FullName),
		p.Sanitize(data.Email), p.Sanitize(data.Email),
		p.Sanitize(businessName),
		p.Sanitize(phone),
		p.Sanitize(data.Service),
		p.Sanitize(data.BudgetRange),
		when,
		message,
		p.Sanitize(data.RequestID),
	)

	return Message{
		To:       []string{to},
		ReplyTo:  data.Email,
		Subject:  InquirySubject(data.Service, data.FullName),
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

// singleLine collapses whitespace, including CR/LF, so a value is safe to
// use in a header.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
