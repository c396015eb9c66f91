package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	price, err := Quote("two", false)
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(800)))

	price, err = Quote("two", true)
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(850)))

	price, err = Quote("three", true)
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(950)))
}

func TestQuoteUnknownSize(t *testing.T) {
	_, err := Quote("four", false)
	assert.ErrorIs(t, err, ErrUnknownSize)
}

func TestBentoSizesExposeShapes(t *testing.T) {
	sizes := BentoSizes()
	assert.Len(t, sizes, 2)
	assert.Equal(t, "two", sizes[0].Key)
	assert.NotEmpty(t, sizes[0].Shapes)
}
