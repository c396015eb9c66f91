package format

import "github.com/leekchan/accounting"

var czk = accounting.Accounting{Symbol: "Kč", Precision: 0, Thousand: " ", Format: "%v %s"}

// CZK renders a whole-crown amount for emails and admin views, e.g. "1 950 Kč".
func CZK(amount int64) string {
	return czk.FormatMoney(amount)
}
