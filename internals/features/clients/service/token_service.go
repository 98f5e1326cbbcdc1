// internals/features/clients/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

/* =========================================================
   Signed one-shot token (acceptance / invite / verify email)
   Payload minimal: sub (email), purpose, exp, iat.
========================================================= */

const (
	TokenPurposeAssignAccept = "assign_accept"
	TokenPurposeInvite       = "invite"
	TokenPurposeVerifyEmail  = "verify_email"
)

const (
	AssignAcceptTTL = 7 * 24 * time.Hour
	InviteTTL       = 5 * 24 * time.Hour
	VerifyEmailTTL  = 1 * time.Hour
)

var (
	// ErrTokenExpired: token valid secara struktur/signature tapi sudah lewat exp.
	ErrTokenExpired = errors.New("token sudah kadaluarsa")
	// ErrTokenInvalid: signature salah, struktur rusak, atau purpose tidak cocok.
	ErrTokenInvalid = errors.New("token tidak valid")
)

// IssueToken menandatangani token HS256 untuk satu transisi status tertentu.
func IssueToken(secret, email, purpose string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":     strings.ToLower(strings.TrimSpace(email)),
		"purpose": purpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken memverifikasi signature + expiry + purpose, lalu mengembalikan
// subject email. Expired dibedakan dari invalid supaya UI bisa kasih pesan tepat.
func VerifyToken(secret, raw, purpose string) (string, error) {
	tok, err := jwt.Parse(strings.TrimSpace(raw), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !tok.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	if p, _ := claims["purpose"].(string); p != purpose {
		return "", ErrTokenInvalid
	}
	sub, _ := claims["sub"].(string)
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
