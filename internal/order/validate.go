package order

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Egyptian mobile numbers: 01 followed by nine digits.
var phonePattern = regexp.MustCompile(`^01[0-9]{9}$`)

const (
	PaymentCashOnDelivery = "cashOnDelivery"

	minNameLen    = 2
	maxNameLen    = 100
	minAddressLen = 5
	maxNotesLen   = 500
)

// CheckoutForm is the customer-entered half of an order.
type CheckoutForm struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}

// Validate returns field-level messages for everything wrong with the form.
// An empty map means the form is acceptable. Validation never fails hard; it
// only blocks submission.
func (f *CheckoutForm) Validate() map[string]string {
	problems := map[string]string{}

	name := strings.TrimSpace(f.Name)
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		problems["name"] = "يرجى إدخال الاسم الكامل"
	}

	if !phonePattern.MatchString(strings.TrimSpace(f.Phone)) {
		problems["phone"] = "يرجى إدخال رقم هاتف صحيح"
	}

	if utf8.RuneCountInString(strings.TrimSpace(f.Address)) < minAddressLen {
		problems["address"] = "يرجى إدخال العنوان بالتفصيل"
	}

	if utf8.RuneCountInString(f.Notes) > maxNotesLen {
		problems["notes"] = "الملاحظات طويلة جداً"
	}

	if f.PaymentMethod != "" && f.PaymentMethod != PaymentCashOnDelivery {
		problems["paymentMethod"] = "طريقة الدفع غير مدعومة"
	}

	return problems
}

// Normalize fills defaults and trims whitespace after validation passed.
func (f *CheckoutForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.Notes = strings.TrimSpace(f.Notes)
	if f.PaymentMethod == "" {
		f.PaymentMethod = PaymentCashOnDelivery
	}
}
