package notify

import (
	"context"
	"fmt"

	"cashbook-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridNotifier struct {
	client    mailClient
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) *SendGridNotifier {
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *SendGridNotifier) MemberJoined(ctx context.Context, owner Recipient, businessName, memberName string) error {
	subject := fmt.Sprintf("%s joined %s", memberName, businessName)
	plainText := fmt.Sprintf("Hello %s,\n\n%s joined your business %s using its join code.\n\nIf you did not share the code, rotate it from the business settings.",
		owner.Name, memberName, businessName)
	htmlContent := fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p><strong>%s</strong> joined your business <strong>%s</strong> using its join code.</p>
<p>If you did not share the code, rotate it from the business settings.</p>
</body></html>`, owner.Name, memberName, businessName)

	return n.send(ctx, owner, subject, plainText, htmlContent)
}

func (n *SendGridNotifier) JoinCodeRotated(ctx context.Context, owner Recipient, businessName, code string) error {
	subject := fmt.Sprintf("New join code for %s", businessName)
	plainText := fmt.Sprintf("Hello %s,\n\nThe join code of %s expired and was replaced. The new code is %s.",
		owner.Name, businessName, code)
	htmlContent := fmt.Sprintf(`<html><body>
<p>Hello %s,</p>
<p>The join code of <strong>%s</strong> expired and was replaced. The new code is <strong>%s</strong>.</p>
</body></html>`, owner.Name, businessName, code)

	return n.send(ctx, owner, subject, plainText, htmlContent)
}

func (n *SendGridNotifier) send(ctx context.Context, to Recipient, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail(to.Name, to.Email)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "Send", "to", to.Email, "subject", subject)
	response, err := n.client.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "Send", err, "to", to.Email)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
