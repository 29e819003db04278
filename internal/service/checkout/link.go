package checkout

import (
	"net/url"
	"strings"
)

const messageLinkBase = "https://wa.me/"

// MessageLink builds the chat deep link that opens a conversation with phone
// prefilled with text.
func MessageLink(phone, text string) string {
	return messageLinkBase + digitsOnly(phone) + "?text=" + encodeComponent(text)
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes text the way browsers' encodeURIComponent does:
// spaces become %20 and !'()* stay literal.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
