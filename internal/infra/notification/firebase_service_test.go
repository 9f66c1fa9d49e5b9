package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("device-token", "Referral reward", "You earned 294.75", map[string]string{"type": "referral_commission"})

	assert.Equal(t, "device-token", msg.Token)
	assert.Equal(t, "Referral reward", msg.Notification.Title)
	assert.Equal(t, "You earned 294.75", msg.Notification.Body)
	assert.Equal(t, "referral_commission", msg.Data["type"])
	assert.Equal(t, "high", msg.Android.Priority)
}
