// file: internals/features/notifications/service/templates_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcceptanceEmail(t *testing.T) {
	subject, html := AcceptanceEmail("Budi", "Web Hosting", "INV-1700000000000", "https://app.example.com/accept?token=abc")

	assert.Contains(t, subject, "Web Hosting")
	assert.Contains(t, html, "Budi")
	assert.Contains(t, html, "INV-1700000000000")
	assert.Contains(t, html, "https://app.example.com/accept?token=abc")
}

func TestRenewalReminderEmail(t *testing.T) {
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	subject, html := RenewalReminderEmail("Budi", "Web Hosting", "Term 2", due, 150, "usd", 3)

	assert.Contains(t, subject, "3")
	assert.Contains(t, html, "Term 2")
	assert.Contains(t, html, "2025-07-01")
	assert.Contains(t, html, "150")
}

func TestInviteEmail(t *testing.T) {
	subject, html := InviteEmail("client@example.com", "https://app.example.com/invites/accept?token=xyz")

	assert.NotEmpty(t, subject)
	assert.Contains(t, html, "https://app.example.com/invites/accept?token=xyz")
}
