package notify

import (
	"context"

	"cashbook-backend/internal/logger"
)

// Recipient is an addressee of a notification email.
type Recipient struct {
	Name  string
	Email string
}

// Notifier sends business notifications to owners.
type Notifier interface {
	MemberJoined(ctx context.Context, owner Recipient, businessName, memberName string) error
	JoinCodeRotated(ctx context.Context, owner Recipient, businessName, code string) error
}

// LogNotifier records notifications in the log instead of sending them.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) MemberJoined(ctx context.Context, owner Recipient, businessName, memberName string) error {
	logger.InfoContext(ctx, "Member joined notification", "to", owner.Email, "business", businessName, "member", memberName)
	return nil
}

func (n *LogNotifier) JoinCodeRotated(ctx context.Context, owner Recipient, businessName, code string) error {
	logger.InfoContext(ctx, "Join code rotated notification", "to", owner.Email, "business", businessName)
	return nil
}
