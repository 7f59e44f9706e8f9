package chat

import (
	"fmt"
	"strings"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
)

// StorePrompt builds the assistant system instruction from the store settings
// and the current catalog, so answers stay grounded in what the shop sells.
func StorePrompt(settings catalog.Settings, services []catalog.Service) string {
	var b strings.Builder

	fmt.Fprintf(&b, "أنت مساعد ذكي لمتجر \"%s\" - متجر عطور يقدم عطوراً شرقية وغربية بأسعار تنافسية.\n\n", settings.StoreName)
	b.WriteString("تعليمات الرد:\n")
	b.WriteString("- كن مهذباً ومفيداً وودوداً\n")
	b.WriteString("- إذا سُئلت عن الأسعار، اذكر السعر المعروض إن وُجد\n")
	b.WriteString("- إذا لم تعرف إجابة محددة، وجه العميل للتواصل المباشر مع البائع عبر الواتساب\n")
	if settings.WhatsAppNumber != "" {
		fmt.Fprintf(&b, "- رقم الواتساب للتواصل: %s\n", settings.WhatsAppNumber)
	}

	if len(services) > 0 {
		b.WriteString("\nالمنتجات المتوفرة:\n")
		for _, s := range services {
			if s.Price != "" {
				fmt.Fprintf(&b, "- %s (%s)\n", s.Title, s.Price)
			} else {
				fmt.Fprintf(&b, "- %s\n", s.Title)
			}
		}
	}

	return b.String()
}

// FallbackReply is returned to the widget when the completion API is down, so
// the customer always gets an answer instead of an error.
func FallbackReply(whatsappNumber string) string {
	if whatsappNumber == "" {
		return "⚠️ حدث خطأ تقني. يرجى المحاولة مرة أخرى لاحقاً."
	}
	return fmt.Sprintf("⚠️ حدث خطأ تقني. يمكنك التواصل معنا مباشرة عبر الواتساب: %s", whatsappNumber)
}
