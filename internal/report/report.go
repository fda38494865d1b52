// Package report computes code-length distributions over providers, backing
// the codestats tool.
package report

import (
	"slices"

	"github.com/bikeshed-sanctuary/currency-validator/provider"
)

// Distribution summarizes how code lengths are spread across a provider's set.
type Distribution struct {
	Provider  string
	Total     int
	MaxLength int
	ByLength  map[int]int
}

// Analyze counts the provider's codes per length.
func Analyze(p provider.CodeProvider) Distribution {
	d := Distribution{
		Provider:  p.Name(),
		MaxLength: p.MaxLength(),
		ByLength:  make(map[int]int),
	}
	for code := range p.ValidCodes() {
		d.ByLength[len(code)]++
		d.Total++
	}
	return d
}

// Lengths returns the observed code lengths in ascending order.
func (d Distribution) Lengths() []int {
	lengths := make([]int, 0, len(d.ByLength))
	for l := range d.ByLength {
		lengths = append(lengths, l)
	}
	slices.Sort(lengths)
	return lengths
}

// CoverageAt returns the fraction of codes with length at most n.
func (d Distribution) CoverageAt(n int) float64 {
	if d.Total == 0 {
		return 0
	}
	kept := 0
	for l, count := range d.ByLength {
		if l <= n {
			kept += count
		}
	}
	return float64(kept) / float64(d.Total)
}
