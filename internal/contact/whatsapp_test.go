package contact

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("15551234567", "Ana", "ana@example.com", "Love the site!")

	require.True(t, strings.HasPrefix(link, "https://wa.me/15551234567?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Hi, I'm reaching out via your portfolio site!")
	assert.Contains(t, text, "Name: Ana")
	assert.Contains(t, text, "Email: ana@example.com")
	assert.Contains(t, text, "Message: Love the site!")
}

func TestWhatsAppLinkEncoding(t *testing.T) {
	t.Run("spaces encode as %20, never +", func(t *testing.T) {
		link := WhatsAppLink("1", "A B", "a@b.c", "hello world")
		assert.NotContains(t, link, "+")
		assert.Contains(t, link, "%20")
	})

	t.Run("sub-delims stay bare like encodeURIComponent leaves them", func(t *testing.T) {
		link := WhatsAppLink("1", "O'Brien", "o@b.c", "Great work! (really) *wow*")

		assert.Contains(t, link, "!")
		assert.Contains(t, link, "'")
		assert.Contains(t, link, "(really)")
		assert.Contains(t, link, "*wow*")
		for _, escaped := range []string{"%21", "%27", "%28", "%29", "%2A"} {
			assert.NotContains(t, link, escaped)
		}
	})

	t.Run("newlines and punctuation survive a round trip", func(t *testing.T) {
		message := "line one\nline two & more?"
		link := WhatsAppLink("1", "N", "e@x.y", message)

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Contains(t, parsed.Query().Get("text"), message)
	})
}
