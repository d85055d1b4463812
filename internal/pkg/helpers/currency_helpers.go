package helpers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount of rupiah the way Indonesian locales do,
// e.g. "Rp 4.500.000,00".
func FormatIDR(amount int64) string {
	return idPrinter.Sprintf("Rp %v", number.Decimal(amount, number.Scale(2)))
}
