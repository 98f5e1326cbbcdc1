// file: internals/features/clients/model/client_invite_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientInvite_IsExpiredAt(t *testing.T) {
	now := time.Now()

	inv := ClientInvite{InviteExpiry: now.Add(24 * time.Hour)}
	assert.False(t, inv.IsExpiredAt(now))

	inv.InviteExpiry = now.Add(-time.Minute)
	assert.True(t, inv.IsExpiredAt(now))
}
