// Package whatsapp формирует текст подтверждения бронирования и deep link
// для передачи в WhatsApp. Отправкой занимается внешний клиент - здесь
// только чистое форматирование.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildMessage строит детерминированный текст подтверждения бронирования.
// Шаблон на индонезийском - язык клиентов салонов.
func BuildMessage(data ConfirmationData) string {
	var b strings.Builder

	b.WriteString("Halo, saya ingin konfirmasi booking:\n\n")
	fmt.Fprintf(&b, "🏠 *Cabang:* %s\n", data.BranchName)
	fmt.Fprintf(&b, "👤 *Nama:* %s\n", data.CustomerName)
	fmt.Fprintf(&b, "💆 *Layanan:* %s\n", data.ServiceName)
	fmt.Fprintf(&b, "📅 *Tanggal:* %s\n", data.Date)
	fmt.Fprintf(&b, "⏰ *Jam:* %s (%d menit)\n", data.StartTime, data.DurationMinutes)
	fmt.Fprintf(&b, "💰 *Total:* Rp %s\n\n", FormatRupiah(data.TotalPrice))
	b.WriteString("Mohon konfirmasinya. Terima kasih! 🙏")

	return b.String()
}

// BuildLink строит wa.me deep link с URL-encoded текстом сообщения.
// phone - номер в международном формате без плюса (например, "6287777345077").
func BuildLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// FormatRupiah форматирует сумму с индонезийским разделителем тысяч:
// 133000 → "133.000"
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, ".")
	if negative {
		out = "-" + out
	}
	return out
}
