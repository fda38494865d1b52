package provider

import (
	"fmt"
	"math"

	"github.com/bikeshed-sanctuary/currency-validator/internal/codedata"
)

// CryptoOption narrows the cryptocurrency symbol list at construction time.
// At most one filter may be supplied.
type CryptoOption func(*cryptoFilter)

type cryptoFilter struct {
	maxLength  *int
	percentage *float64
}

// WithMaxLength keeps only symbols no longer than n characters. n must be
// positive.
func WithMaxLength(n int) CryptoOption {
	return func(f *cryptoFilter) { f.maxLength = &n }
}

// WithPercentage keeps the first floor(sourceLen * p) symbols of the source
// list. p must be in (0, 1]. The source list is ordered by market-cap rank,
// so this keeps the highest-ranked symbols.
func WithPercentage(p float64) CryptoOption {
	return func(f *cryptoFilter) { f.percentage = &p }
}

// NewCrypto builds a provider over the cryptocurrency symbol list, optionally
// narrowed by at most one filter. Filtering keeps the source ordering intact,
// so results are deterministic. The max length is recomputed over whatever
// the filter kept.
func NewCrypto(opts ...CryptoOption) (*Static, error) {
	var f cryptoFilter
	for _, opt := range opts {
		opt(&f)
	}
	if f.maxLength != nil && f.percentage != nil {
		return nil, fmt.Errorf("%s provider: %w", cryptoName, ErrBothFilters)
	}

	source := codedata.CryptoSymbols
	switch {
	case f.maxLength != nil:
		n := *f.maxLength
		if n <= 0 {
			return nil, fmt.Errorf("%s provider: max length %d: %w", cryptoName, n, ErrInvalidMaxLength)
		}
		kept := make([]string, 0, len(source))
		for _, sym := range source {
			if len(sym) <= n {
				kept = append(kept, sym)
			}
		}
		source = kept
	case f.percentage != nil:
		p := *f.percentage
		if p <= 0 || p > 1 {
			return nil, fmt.Errorf("%s provider: percentage %v: %w", cryptoName, p, ErrInvalidPercentage)
		}
		count := int(math.Floor(float64(len(source)) * p))
		source = source[:count]
	}

	return NewStatic(cryptoName, source)
}
