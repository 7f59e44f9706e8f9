package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutFormValidate(t *testing.T) {
	valid := CheckoutForm{
		Name:          "أحمد محمد",
		Phone:         "01012345678",
		Address:       "مدينة نصر، القاهرة",
		PaymentMethod: PaymentCashOnDelivery,
	}
	assert.Empty(t, valid.Validate())

	t.Run("short name", func(t *testing.T) {
		f := valid
		f.Name = "أ"
		problems := f.Validate()
		assert.Contains(t, problems, "name")
	})

	t.Run("bad phone", func(t *testing.T) {
		for _, phone := range []string{"", "12345", "0212345678", "01012345", "0101234567890"} {
			f := valid
			f.Phone = phone
			assert.Contains(t, f.Validate(), "phone", "phone %q should be rejected", phone)
		}
	})

	t.Run("phone with surrounding spaces is tolerated", func(t *testing.T) {
		f := valid
		f.Phone = " 01012345678 "
		assert.Empty(t, f.Validate())
	})

	t.Run("short address", func(t *testing.T) {
		f := valid
		f.Address = "هنا"
		assert.Contains(t, f.Validate(), "address")
	})

	t.Run("oversized notes", func(t *testing.T) {
		f := valid
		f.Notes = strings.Repeat("ملاحظة ", 200)
		assert.Contains(t, f.Validate(), "notes")
	})

	t.Run("unknown payment method", func(t *testing.T) {
		f := valid
		f.PaymentMethod = "credit_card"
		assert.Contains(t, f.Validate(), "paymentMethod")
	})

	t.Run("empty payment method is allowed and defaulted", func(t *testing.T) {
		f := valid
		f.PaymentMethod = ""
		assert.Empty(t, f.Validate())
		f.Normalize()
		assert.Equal(t, PaymentCashOnDelivery, f.PaymentMethod)
	})
}
