// Package contact handles the public contact form: persisting submissions
// and building the outbound messaging deep link.
package contact

import (
	"fmt"
	"net/url"
	"strings"
)

const whatsappBaseURL = "https://wa.me"

// WhatsAppLink builds the pre-filled wa.me deep link the client opens after
// a submission is saved. Pure string construction, no network contract.
func WhatsAppLink(phone, name, email, message string) string {
	text := fmt.Sprintf(`Hi, I'm reaching out via your portfolio site!

Name: %s
Email: %s
Message: %s`, name, email, message)

	return fmt.Sprintf("%s/%s?text=%s", whatsappBaseURL, phone, encodeComponent(text))
}

// componentEscaper undoes the places where url.QueryEscape diverges from
// JavaScript's encodeURIComponent: spaces become %20, not '+', and the
// sub-delims !'()* stay bare.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent matches JavaScript's encodeURIComponent byte for byte.
func encodeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}
