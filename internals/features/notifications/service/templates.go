package service

import (
	"fmt"
	"time"
)

/* =========================================================
   Template email (HTML sederhana, copy diserahkan ke tim FE
   kalau mau dipercantik; isi data yang penting lengkap)
========================================================= */

// AcceptanceEmail: dikirim saat admin meng-assign service ke client.
// Link membawa acceptance token (berlaku 7 hari).
func AcceptanceEmail(clientName, serviceName, invoiceID, acceptURL string) (subject, html string) {
	subject = fmt.Sprintf("Konfirmasi layanan: %s", serviceName)
	html = fmt.Sprintf(`
		<p>Halo %s,</p>
		<p>Anda menerima penawaran layanan <b>%s</b> (invoice <b>%s</b>).</p>
		<p>Silakan konfirmasi melalui tautan berikut (berlaku 7 hari):</p>
		<p><a href="%s">Konfirmasi Layanan</a></p>
	`, clientName, serviceName, invoiceID, acceptURL)
	return
}

// RenewalReminderEmail: dikirim scheduler pada H-7 / H-3 / H-1.
func RenewalReminderEmail(clientName, serviceName, label string, dueDate time.Time, amount float64, currency string, daysLeft int) (subject, html string) {
	subject = fmt.Sprintf("Pengingat pembayaran %s (%d hari lagi)", serviceName, daysLeft)
	html = fmt.Sprintf(`
		<p>Halo %s,</p>
		<p>Tagihan <b>%s</b> untuk layanan <b>%s</b> akan jatuh tempo pada <b>%s</b> (%d hari lagi).</p>
		<p>Nominal: <b>%.2f %s</b></p>
		<p>Mohon lakukan pembayaran sebelum jatuh tempo.</p>
	`, clientName, label, serviceName, dueDate.Format("2006-01-02"), daysLeft, amount, currency)
	return
}

// InviteEmail: undangan client baru (token berlaku 5 hari).
func InviteEmail(email, inviteURL string) (subject, html string) {
	subject = "Undangan bergabung di Layananku"
	html = fmt.Sprintf(`
		<p>Halo %s,</p>
		<p>Anda diundang untuk bergabung di dashboard client Layananku.</p>
		<p>Silakan terima undangan melalui tautan berikut (berlaku 5 hari):</p>
		<p><a href="%s">Terima Undangan</a></p>
	`, email, inviteURL)
	return
}
