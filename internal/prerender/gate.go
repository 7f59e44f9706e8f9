// Package prerender serves crawlers a pre-rendered snapshot of the storefront
// while normal traffic passes straight through to the origin.
package prerender

import (
	"regexp"
	"strings"
)

// Known crawler/bot user-agent fragments. Matching is case-insensitive.
var crawlerUASubstrings = []string{
	"googlebot",
	"bingbot",
	"yandex",
	"duckduckbot",
	"baiduspider",
	"facebookexternalhit",
	"twitterbot",
	"rogerbot",
	"linkedinbot",
	"embedly",
	"quora link preview",
	"showyoubot",
	"outbrain",
	"pinterest",
	"slackbot",
	"vkshare",
	"w3c_validator",
}

// Paths ending in a short alphanumeric extension are static assets and are
// never worth proxying.
var assetExtension = regexp.MustCompile(`\.[a-zA-Z0-9]{2,5}$`)

// IsCrawler reports whether the user-agent belongs to a known crawler.
func IsCrawler(userAgent string) bool {
	ua := strings.ToLower(userAgent)
	for _, bot := range crawlerUASubstrings {
		if strings.Contains(ua, bot) {
			return true
		}
	}
	return false
}

// SkipPath reports whether the request path points at a static asset.
func SkipPath(path string) bool {
	return assetExtension.MatchString(path)
}

// ShouldProxy is the gate decision: proxy to the rendering service iff the
// path is not a static asset and the user-agent is a crawler.
func ShouldProxy(path, userAgent string) bool {
	return !SkipPath(path) && IsCrawler(userAgent)
}
