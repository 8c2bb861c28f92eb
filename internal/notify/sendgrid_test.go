package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailClient struct {
	sent     []*mail.SGMailV3
	response *rest.Response
	err      error
}

func (c *fakeMailClient) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	c.sent = append(c.sent, email)
	if c.err != nil {
		return nil, c.err
	}
	return c.response, nil
}

func newTestNotifier(client *fakeMailClient) *SendGridNotifier {
	return &SendGridNotifier{client: client, fromEmail: "noreply@cashbook.test", fromName: "Cashbook"}
}

func TestSendGridNotifier_MemberJoined(t *testing.T) {
	client := &fakeMailClient{response: &rest.Response{StatusCode: 202}}
	n := newTestNotifier(client)

	err := n.MemberJoined(context.Background(), Recipient{Name: "Asha", Email: "asha@example.com"}, "Corner Shop", "Ravi")
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "Ravi joined Corner Shop", msg.Subject)
	assert.Equal(t, "noreply@cashbook.test", msg.From.Address)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "asha@example.com", msg.Personalizations[0].To[0].Address)
}

func TestSendGridNotifier_JoinCodeRotated(t *testing.T) {
	client := &fakeMailClient{response: &rest.Response{StatusCode: 202}}
	n := newTestNotifier(client)

	err := n.JoinCodeRotated(context.Background(), Recipient{Name: "Asha", Email: "asha@example.com"}, "Corner Shop", "042917")
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	assert.Contains(t, client.sent[0].Content[0].Value, "042917")
}

func TestSendGridNotifier_ErrorStatus(t *testing.T) {
	client := &fakeMailClient{response: &rest.Response{StatusCode: 401, Body: "unauthorized"}}
	n := newTestNotifier(client)

	err := n.MemberJoined(context.Background(), Recipient{Email: "asha@example.com"}, "Corner Shop", "Ravi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestSendGridNotifier_TransportError(t *testing.T) {
	client := &fakeMailClient{err: errors.New("connection refused")}
	n := newTestNotifier(client)

	err := n.JoinCodeRotated(context.Background(), Recipient{Email: "asha@example.com"}, "Corner Shop", "000001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
