package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMulti(t *testing.T) {
	t.Run("union of member sets", func(t *testing.T) {
		m1 := new(MockProvider)
		m2 := new(MockProvider)

		m1.On("Name").Return("fiat")
		m1.On("ValidCodes").Return(map[string]struct{}{"USD": {}, "EUR": {}})
		m2.On("Name").Return("cryptocurrency")
		m2.On("ValidCodes").Return(map[string]struct{}{"BTC": {}, "USD": {}, "DOGE": {}})

		p, err := NewMulti(m1, m2)
		require.NoError(t, err)

		codes := p.ValidCodes()
		assert.Len(t, codes, 4) // USD appears in both members, counted once
		assert.Contains(t, codes, "USD")
		assert.Contains(t, codes, "EUR")
		assert.Contains(t, codes, "BTC")
		assert.Contains(t, codes, "DOGE")
		assert.Equal(t, 4, p.MaxLength())
		assert.Equal(t, "fiat, cryptocurrency", p.Name())
		m1.AssertExpectations(t)
		m2.AssertExpectations(t)
	})

	t.Run("member order changes only the name", func(t *testing.T) {
		m1 := new(MockProvider)
		m2 := new(MockProvider)

		m1.On("Name").Return("fiat")
		m1.On("ValidCodes").Return(map[string]struct{}{"USD": {}})
		m2.On("Name").Return("cryptocurrency")
		m2.On("ValidCodes").Return(map[string]struct{}{"BTC": {}})

		forward, err := NewMulti(m1, m2)
		require.NoError(t, err)
		reversed, err := NewMulti(m2, m1)
		require.NoError(t, err)

		assert.Equal(t, forward.ValidCodes(), reversed.ValidCodes())
		assert.Equal(t, forward.MaxLength(), reversed.MaxLength())
		assert.Equal(t, "fiat, cryptocurrency", forward.Name())
		assert.Equal(t, "cryptocurrency, fiat", reversed.Name())
	})

	t.Run("empty provider list", func(t *testing.T) {
		_, err := NewMulti()
		assert.ErrorIs(t, err, ErrNoProviders)
	})

	t.Run("fiat and crypto union", func(t *testing.T) {
		fiat := NewFiat()
		crypto, err := NewCrypto()
		require.NoError(t, err)

		p, err := NewMulti(fiat, crypto)
		require.NoError(t, err)

		fiatCodes := fiat.ValidCodes()
		cryptoCodes := crypto.ValidCodes()
		union := p.ValidCodes()

		for code := range fiatCodes {
			assert.Contains(t, union, code)
		}
		for code := range cryptoCodes {
			assert.Contains(t, union, code)
		}

		expected := len(fiatCodes) + len(cryptoCodes)
		for code := range cryptoCodes {
			if _, ok := fiatCodes[code]; ok {
				expected--
			}
		}
		assert.Len(t, union, expected)
		assert.Equal(t, crypto.MaxLength(), p.MaxLength())
	})
}

func TestMulti_ValidCodesIsACopy(t *testing.T) {
	crypto, err := NewCrypto()
	require.NoError(t, err)

	p, err := NewMulti(NewFiat(), crypto)
	require.NoError(t, err)

	codes := p.ValidCodes()
	delete(codes, "USD")

	assert.Contains(t, p.ValidCodes(), "USD")
}
