package calc

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Bento price table. The ordering UI quotes from it before an order is
// created; the order core itself treats the resulting amount as opaque.

var ErrUnknownSize = errors.New("unknown cake size")

type BentoSize struct {
	Key       string          `json:"key"`
	Label     string          `json:"label"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Shapes    []string        `json:"shapes"`
}

var bentoSizes = []BentoSize{
	{Key: "two", Label: "Pro 2 osoby", BasePrice: decimal.NewFromInt(800), Shapes: []string{"round", "star", "heart"}},
	{Key: "three", Label: "Pro 3 osoby", BasePrice: decimal.NewFromInt(900), Shapes: []string{"square"}},
}

var plaquePrice = decimal.NewFromInt(50)

func BentoSizes() []BentoSize {
	return bentoSizes
}

func PlaquePrice() decimal.Decimal {
	return plaquePrice
}

// Quote returns the whole-CZK price for a given size, plus the plaque
// surcharge when plaque text was requested.
func Quote(sizeKey string, withPlaque bool) (decimal.Decimal, error) {
	for _, size := range bentoSizes {
		if size.Key == sizeKey {
			total := size.BasePrice
			if withPlaque {
				total = total.Add(plaquePrice)
			}
			return total, nil
		}
	}
	return decimal.Zero, ErrUnknownSize
}
