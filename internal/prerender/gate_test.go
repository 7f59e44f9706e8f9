package prerender

import "testing"

func TestIsCrawler(t *testing.T) {
	cases := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", true},
		{"Mozilla/5.0 (compatible; bingbot/2.0)", true},
		{"facebookexternalhit/1.1", true},
		{"Slackbot-LinkExpanding 1.0", true},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsCrawler(tc.ua); got != tc.want {
			t.Fatalf("IsCrawler(%q) = %v, want %v", tc.ua, got, tc.want)
		}
	}
}

func TestSkipPath(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/logo.png", true},
		{"/assets/app.js", true},
		{"/styles.css", true},
		{"/fonts/arabic.woff2", true},
		{"/product/42", false},
		{"/", false},
		{"/about-us", false},
		{"/v1.2/page", false}, // extension must be trailing
	}
	for _, tc := range cases {
		if got := SkipPath(tc.path); got != tc.want {
			t.Fatalf("SkipPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestShouldProxy(t *testing.T) {
	const googlebot = "Mozilla/5.0 (compatible; Googlebot/2.1)"

	if !ShouldProxy("/product/42", googlebot) {
		t.Fatal("crawler on a page path must be proxied")
	}
	if ShouldProxy("/logo.png", googlebot) {
		t.Fatal("static assets are never proxied, crawler or not")
	}
	if ShouldProxy("/product/42", "Chrome/120.0") {
		t.Fatal("normal traffic passes through")
	}
}
