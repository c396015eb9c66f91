package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vengerka/cakemaster-api/app/models"
)

func TestVariableSymbol(t *testing.T) {
	assert.Equal(t, "1230000000", VariableSymbol("abc123"))
	assert.Equal(t, "0000000000", VariableSymbol("no-digits-here"))
	assert.Equal(t, "1234567890", VariableSymbol("12345678901234"))
	assert.Equal(t, "4715000000", VariableSymbol("a4b7-c15"))

	// Reproducible: two invocations over the same id must agree.
	assert.Equal(t, VariableSymbol("order-42"), VariableSymbol("order-42"))
}

func TestBuildPaymentPayload(t *testing.T) {
	order := &models.Order{ID: "abc123", Amount: 1950}
	cfg := PaymentConfig{IBAN: "CZ6508000000192000145399", Message: "Bento dort"}

	payload := BuildPaymentPayload(order, VariableSymbol(order.ID), cfg)

	assert.Equal(t,
		"SPD*1.0*ACC:CZ6508000000192000145399*AM:1950.00*CC:CZK*X-VS:1230000000*MSG:Bento dort",
		payload,
	)
}

func TestBuildPaymentPayloadDefaultsMessage(t *testing.T) {
	order := &models.Order{ID: "1", Amount: 800}
	payload := BuildPaymentPayload(order, VariableSymbol(order.ID), PaymentConfig{IBAN: "CZ123"})

	assert.True(t, strings.HasSuffix(payload, "*MSG:Bento dort"))
	assert.Contains(t, payload, "AM:800.00")
	assert.Contains(t, payload, "CC:CZK")
}

func TestPaymentQRPNG(t *testing.T) {
	png, err := PaymentQRPNG("SPD*1.0*ACC:CZ123*AM:800.00*CC:CZK*X-VS:1000000000*MSG:Bento dort", 256)

	assert.NoError(t, err)
	// PNG magic bytes.
	assert.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
