package services

import (
	"fmt"
	"regexp"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/vengerka/cakemaster-api/app/models"
)

// Czech short payment descriptor (SPD) consumed by banking apps' QR readers.

const (
	paymentCurrency       = "CZK"
	variableSymbolLength  = 10
	defaultPaymentMessage = "Bento dort"
)

type PaymentConfig struct {
	IBAN    string
	Message string
}

var nonDigits = regexp.MustCompile(`\D`)

// VariableSymbol derives the bank-transfer matching reference from the order
// id: digits only, right-padded with zeros to exactly ten characters. It is
// computed on demand and must stay byte-for-byte reproducible.
func VariableSymbol(orderID string) string {
	digits := nonDigits.ReplaceAllString(orderID, "")
	if len(digits) < variableSymbolLength {
		digits += strings.Repeat("0", variableSymbolLength-len(digits))
	}
	return digits[:variableSymbolLength]
}

// BuildPaymentPayload renders the SPD string for the QR code. The amount is
// whole crowns, so the decimal part is always ".00".
func BuildPaymentPayload(order *models.Order, reference string, cfg PaymentConfig) string {
	message := cfg.Message
	if message == "" {
		message = defaultPaymentMessage
	}
	return fmt.Sprintf("SPD*1.0*ACC:%s*AM:%d.00*CC:%s*X-VS:%s*MSG:%s",
		cfg.IBAN, order.Amount, paymentCurrency, reference, message)
}

// PaymentQRPNG renders the payload for clients without their own QR encoder.
func PaymentQRPNG(payload string, size int) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, size)
}
