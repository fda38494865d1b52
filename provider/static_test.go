package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatic(t *testing.T) {
	t.Run("uppercases and de-duplicates", func(t *testing.T) {
		p, err := NewStatic("custom", []string{"usd", "USD", "eur", "wavax"})
		require.NoError(t, err)

		codes := p.ValidCodes()
		assert.Len(t, codes, 3)
		assert.Contains(t, codes, "USD")
		assert.Contains(t, codes, "EUR")
		assert.Contains(t, codes, "WAVAX")
		assert.Equal(t, 5, p.MaxLength())
		assert.Equal(t, "custom", p.Name())
	})

	t.Run("empty list", func(t *testing.T) {
		_, err := NewStatic("custom", nil)
		assert.ErrorIs(t, err, ErrEmptyCodeSet)
	})

	t.Run("blank entries only", func(t *testing.T) {
		_, err := NewStatic("custom", []string{"", "  "})
		assert.ErrorIs(t, err, ErrEmptyCodeSet)
	})
}

func TestNewFiat(t *testing.T) {
	p := NewFiat()

	codes := p.ValidCodes()
	assert.Contains(t, codes, "USD")
	assert.Contains(t, codes, "EUR")
	assert.Contains(t, codes, "JPY")
	assert.NotContains(t, codes, "BTC")
	assert.Equal(t, 3, p.MaxLength())
	assert.Equal(t, "fiat", p.Name())
}

func TestStatic_ValidCodesIsACopy(t *testing.T) {
	p := NewFiat()

	codes := p.ValidCodes()
	delete(codes, "USD")
	codes["FAKE"] = struct{}{}

	fresh := p.ValidCodes()
	assert.Contains(t, fresh, "USD")
	assert.NotContains(t, fresh, "FAKE")
}
