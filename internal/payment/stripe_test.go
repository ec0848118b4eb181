package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripeGateway_SuccessURL(t *testing.T) {
	g := NewStripeGateway("sk_test_unused", "https://example.com")

	got := g.successURL("High-Low-Medium-High-Low")

	assert.Equal(t, "https://example.com/api/render-report?code=High-Low-Medium-High-Low&paid=true", got)
}

func TestStripeGateway_SuccessURLEscapesCode(t *testing.T) {
	g := NewStripeGateway("sk_test_unused", "https://example.com")

	got := g.successURL("weird code&value")

	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "&value")
	assert.Contains(t, got, "weird+code%26value")
}
