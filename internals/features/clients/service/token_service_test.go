// file: internals/features/clients/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueVerifyToken_RoundTrip(t *testing.T) {
	raw, err := IssueToken(testSecret, "client@example.com", TokenPurposeAssignAccept, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	email, err := VerifyToken(testSecret, raw, TokenPurposeAssignAccept)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", email)
}

func TestVerifyToken_Expired(t *testing.T) {
	raw, err := IssueToken(testSecret, "client@example.com", TokenPurposeAssignAccept, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, raw, TokenPurposeAssignAccept)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	raw, err := IssueToken(testSecret, "client@example.com", TokenPurposeInvite, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken("secret-lain", raw, TokenPurposeInvite)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_PurposeMismatch(t *testing.T) {
	// Token invite tidak boleh lolos di endpoint acceptance
	raw, err := IssueToken(testSecret, "client@example.com", TokenPurposeInvite, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, raw, TokenPurposeAssignAccept)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken(testSecret, "bukan.token.jwt", TokenPurposeVerifyEmail)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
