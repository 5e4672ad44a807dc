package utils

import (
	"earnbox/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML email via SMTP
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: EarnBox <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %s: %v", strings.Join(to, ","), err)
		return err
	}

	return nil
}

// SendWithdrawalResolvedEmail notifies a user that an admin resolved their
// withdrawal request.
func SendWithdrawalResolvedEmail(email, name, transactionID string, amount float64, approved bool, notes string) {
	outcome := "Approved"
	detail := "The amount will reach your bank account shortly."
	if !approved {
		outcome = "Rejected"
		detail = "The reserved amount has been returned to your wallet balance."
	}
	if notes != "" {
		detail += " Note from our team: " + notes
	}

	subject := fmt.Sprintf("Your Withdrawal Request Has Been %s", outcome)
	body := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Withdrawal ` + outcome + `</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2563eb;">Withdrawal ` + outcome + `</h2>
        <p>Dear ` + name + `,</p>
        <p>Your withdrawal request <strong>` + transactionID + `</strong> for <strong>` + fmt.Sprintf("₹%.2f", amount) + `</strong> has been ` + strings.ToLower(outcome) + `.</p>
        <p>` + detail + `</p>
        <hr style="border: 1px solid #eee; margin: 20px 0;">
        <p style="font-size: 12px; color: #666;">This is an automated notification from EarnBox.</p>
    </div>
</body>
</html>`

	go SendEmail([]string{email}, subject, body)
}
