package service

import "context"

// NotificationService pushes short notices to a business user's device, such
// as a referral commission credit.
type NotificationService interface {
	// NotifyDevice sends title and body to one device token. data is delivered
	// as the message payload.
	NotifyDevice(ctx context.Context, token, title, body string, data map[string]string) error
}
