package provider

import (
	"fmt"
	"maps"
	"strings"

	"github.com/bikeshed-sanctuary/currency-validator/internal/codedata"
)

const (
	fiatName   = "fiat"
	cryptoName = "cryptocurrency"
)

var _ CodeProvider = (*Static)(nil)

// Static is an immutable, named set of valid currency codes.
type Static struct {
	name   string
	codes  map[string]struct{}
	maxLen int
}

// newStatic builds the set without validating it. Codes are uppercased and
// de-duplicated; blank entries are skipped.
func newStatic(name string, codes []string) *Static {
	set := make(map[string]struct{}, len(codes))
	maxLen := 0
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		set[code] = struct{}{}
		if len(code) > maxLen {
			maxLen = len(code)
		}
	}
	return &Static{name: name, codes: set, maxLen: maxLen}
}

// NewStatic builds a provider over an explicit list of codes, for custom code
// sets. Codes are uppercased and de-duplicated. An empty resulting set is a
// construction error.
func NewStatic(name string, codes []string) (*Static, error) {
	p := newStatic(name, codes)
	if len(p.codes) == 0 {
		return nil, fmt.Errorf("provider %q: %w", name, ErrEmptyCodeSet)
	}
	return p, nil
}

// NewFiat returns a provider over the active ISO 4217 fiat currency codes.
func NewFiat() *Static {
	return newStatic(fiatName, codedata.FiatCodes)
}

// ValidCodes returns a copy of the provider's code set.
func (p *Static) ValidCodes() map[string]struct{} {
	return maps.Clone(p.codes)
}

// MaxLength returns the length of the longest code in the set.
func (p *Static) MaxLength() int {
	return p.maxLen
}

// Name returns the provider's display name.
func (p *Static) Name() string {
	return p.name
}
