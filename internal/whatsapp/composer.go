// Package whatsapp formats cart contents into the order message handed off to
// the store's WhatsApp number via a wa.me deep link. It builds text only;
// opening the link is the client's job.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Line is one order row: title, quantity, and the price text as displayed.
type Line struct {
	Title        string
	Quantity     int
	DisplayPrice string
}

// Composer renders order messages for one store.
type Composer struct {
	// Number is the destination phone in international format, digits only.
	Number string
	// CurrencySuffix follows every amount in the summary block, e.g. "ج".
	CurrencySuffix string
}

// Compose builds the human-readable order message: one line per item followed
// by the subtotal / shipping / total summary. Amounts arrive already formatted
// to 2 decimals.
func (c *Composer) Compose(lines []Line, subtotal, shippingFee, total string) string {
	var b strings.Builder
	b.WriteString("مرحباً، أود طلب المنتجات التالية:\n\n")

	for _, l := range lines {
		fmt.Fprintf(&b, "- %s (%d × %s)\n", l.Title, l.Quantity, l.DisplayPrice)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "الإجمالي الفرعي: %s %s\n", subtotal, c.CurrencySuffix)
	fmt.Fprintf(&b, "رسوم الشحن: %s %s\n", shippingFee, c.CurrencySuffix)
	fmt.Fprintf(&b, "الإجمالي الكلي: %s %s\n", total, c.CurrencySuffix)
	b.WriteString("\nشكراً لكم!")

	return b.String()
}

// Link wraps the message in a wa.me deep link, URL-encoding the text.
func (c *Composer) Link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.Number, url.QueryEscape(message))
}
