package service

import (
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

/* =========================================================
   Mailer
   Kontrak: Send TIDAK pernah mengembalikan error ke caller.
   Kegagalan kirim dicatat di log dan dilaporkan sebagai bool,
   supaya flow bisnis (assignment, scheduler) tetap jalan.
========================================================= */

type Mailer interface {
	Send(to, subject, html string) bool
}

type SendGridMailer struct {
	client      *sendgrid.Client
	fromName    string
	fromAddress string
}

func NewSendGridMailer(apiKey, fromName, fromAddress string) *SendGridMailer {
	var client *sendgrid.Client
	if strings.TrimSpace(apiKey) != "" {
		client = sendgrid.NewSendClient(apiKey)
	}
	return &SendGridMailer{
		client:      client,
		fromName:    fromName,
		fromAddress: fromAddress,
	}
}

func (m *SendGridMailer) Send(to, subject, html string) bool {
	if m.client == nil {
		log.Printf("[MAILER] skip kirim ke %s: SENDGRID_API_KEY belum diset", to)
		return false
	}

	from := mail.NewEmail(m.fromName, m.fromAddress)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", html)

	resp, err := m.client.Send(msg)
	if err != nil {
		log.Printf("[MAILER] gagal kirim ke %s: %v", to, err)
		return false
	}
	if resp.StatusCode >= 400 {
		log.Printf("[MAILER] gagal kirim ke %s: status=%d body=%s", to, resp.StatusCode, resp.Body)
		return false
	}
	return true
}
