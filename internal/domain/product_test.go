package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := NewProduct("p1", "Headphones", "Wireless", decimal.RequireFromString("79.99"), "img.jpg", "Electronics")
		require.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("79.99")))
	})

	t.Run("FreeProductIsValid", func(t *testing.T) {
		_, err := NewProduct("p0", "Sticker", "", decimal.Zero, "", "Accessories")
		assert.NoError(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		tests := []struct {
			name  string
			id    string
			pname string
			price decimal.Decimal
			want  error
		}{
			{"EmptyID", " ", "Headphones", decimal.NewFromInt(1), ErrInvalidProductID},
			{"EmptyName", "p1", "", decimal.NewFromInt(1), ErrInvalidProductName},
			{"NegativePrice", "p1", "Headphones", decimal.NewFromInt(-1), ErrInvalidProductPrice},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewProduct(tt.id, tt.pname, "", tt.price, "", "")
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestParseSortCriterion(t *testing.T) {
	valid := map[string]SortCriterion{
		"":           SortDefault,
		"default":    SortDefault,
		"price-asc":  SortPriceAsc,
		"PRICE-DESC": SortPriceDesc,
		" name-asc ": SortNameAsc,
		"name-desc":  SortNameDesc,
	}
	for in, want := range valid {
		got, err := ParseSortCriterion(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortCriterion("popularity")
	assert.ErrorIs(t, err, ErrInvalidSortCriterion)
}
