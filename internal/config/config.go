// Package config loads service configuration from the environment. Secrets
// (database DSN, Groq key, prerender token) come in via env only; nothing is
// baked into the binary.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config drives the storefront API service.
type Config struct {
	Port        string
	DatabaseDSN string

	// RabbitURL is optional; when empty no order events are published.
	RabbitURL string

	// Groq chat-completion settings. An empty key disables the assistant;
	// the chat endpoint then answers with the fallback text.
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	// Defaults used when the store_settings row is missing.
	ShippingFee    float64
	WhatsAppNumber string
	CurrencySuffix string

	AutoHideAfter time.Duration
	SessionTTL    time.Duration

	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: os.Getenv("STOREFRONT_DB_DSN"),
		RabbitURL:   os.Getenv("RABBITMQ_URL"),

		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqBaseURL: getenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:   getenv("GROQ_MODEL", "openai/gpt-oss-20b"),

		ShippingFee:    parseFloat(getenv("SHIPPING_FEE", "100"), 100),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", ""),
		CurrencySuffix: getenv("CURRENCY_SUFFIX", "ج"),

		AutoHideAfter: parseDuration(getenv("CART_AUTO_HIDE", "4s"), 4*time.Second),
		SessionTTL:    parseDuration(getenv("CART_SESSION_TTL", "2h"), 2*time.Hour),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

// Proxy drives the prerender edge proxy binary.
type Proxy struct {
	Port string
	// OriginURL is the normal rendering path traffic passes through to.
	OriginURL string
	// ServiceURL is the prerender rendering service base.
	ServiceURL string
	// Token authenticates against the rendering service; required.
	Token string
}

func LoadProxy() (Proxy, error) {
	p := Proxy{
		Port:       getenv("PORT", "8090"),
		OriginURL:  os.Getenv("ORIGIN_URL"),
		ServiceURL: getenv("PRERENDER_SERVICE_URL", "https://service.prerender.io"),
		Token:      os.Getenv("PRERENDER_TOKEN"),
	}
	if p.OriginURL == "" {
		return Proxy{}, fmt.Errorf("ORIGIN_URL environment variable required")
	}
	if p.Token == "" {
		return Proxy{}, fmt.Errorf("PRERENDER_TOKEN environment variable required")
	}
	return p, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
