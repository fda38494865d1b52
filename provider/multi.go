package provider

import (
	"maps"
	"strings"
)

var _ CodeProvider = (*Multi)(nil)

// Multi merges an ordered list of providers into one. Acceptance is plain set
// union: a code is valid when any member provider lists it, so member order
// has no effect on validation. Order shows up only in the composed name,
// which lists members first to last.
type Multi struct {
	name   string
	codes  map[string]struct{}
	maxLen int
}

// NewMulti composes the given providers. At least one provider is required.
// The union and its max length are computed once, up front.
func NewMulti(providers ...CodeProvider) (*Multi, error) {
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	union := make(map[string]struct{})
	maxLen := 0
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
		for code := range p.ValidCodes() {
			union[code] = struct{}{}
			if len(code) > maxLen {
				maxLen = len(code)
			}
		}
	}

	return &Multi{
		name:   strings.Join(names, ", "),
		codes:  union,
		maxLen: maxLen,
	}, nil
}

// ValidCodes returns a copy of the union of all member providers' code sets.
func (p *Multi) ValidCodes() map[string]struct{} {
	return maps.Clone(p.codes)
}

// MaxLength returns the length of the longest code in the union.
func (p *Multi) MaxLength() int {
	return p.maxLen
}

// Name returns the member provider names joined in input order.
func (p *Multi) Name() string {
	return p.name
}
