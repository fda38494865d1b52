// Package currency builds currency-code validators backed by code providers.
//
// A Schema validates one string at a time: it rejects empty and over-length
// input, matches the rest case-insensitively against the configured
// provider's code set, and returns accepted codes uppercased. Validation is
// pure and synchronous; a Schema can be shared across goroutines.
package currency

import (
	"fmt"
	"strings"

	"github.com/bikeshed-sanctuary/currency-validator/provider"
)

const emptyMessage = "Currency code cannot be empty"

// Option configures a Schema.
type Option func(*Schema)

// WithProvider sets the code provider backing the schema.
func WithProvider(p provider.CodeProvider) Option {
	return func(s *Schema) {
		s.prov = p
		s.members = nil
		s.hasMembers = false
	}
}

// WithProviders merges an ordered list of providers into a single composite
// provider backing the schema. An empty list is a construction error.
func WithProviders(ps ...provider.CodeProvider) Option {
	return func(s *Schema) {
		s.prov = nil
		s.members = ps
		s.hasMembers = true
	}
}

// WithMessage overrides the failure message reported for unrecognized codes.
// The empty-input and over-length messages are fixed.
func WithMessage(msg string) Option {
	return func(s *Schema) {
		s.message = msg
	}
}

// Schema validates currency-code strings against a single resolved provider.
type Schema struct {
	prov       provider.CodeProvider
	members    []provider.CodeProvider
	hasMembers bool
	message    string
	codes      map[string]struct{}
}

// New builds a Schema. Without a provider option it validates against the
// fiat provider. Options apply in order; a later provider option replaces an
// earlier one.
func New(opts ...Option) (*Schema, error) {
	s := &Schema{}
	for _, opt := range opts {
		opt(s)
	}

	if s.prov == nil {
		if s.hasMembers {
			multi, err := provider.NewMulti(s.members...)
			if err != nil {
				return nil, fmt.Errorf("composing providers: %w", err)
			}
			s.prov = multi
			s.members = nil
			s.hasMembers = false
		} else {
			s.prov = provider.NewFiat()
		}
	}

	// Snapshot the set once; providers are immutable, so the copy never
	// goes stale.
	s.codes = s.prov.ValidCodes()
	return s, nil
}

// Provider returns the resolved provider backing the schema.
func (s *Schema) Provider() provider.CodeProvider {
	return s.prov
}

// Validate checks a single currency-code string. On success it returns the
// code uppercased. On failure it returns a *ValidationError describing the
// first rule the input broke.
func (s *Schema) Validate(input string) (string, error) {
	if input == "" {
		return "", newValidationError(ErrEmptyCode, emptyMessage)
	}
	if maxLen := s.prov.MaxLength(); len(input) > maxLen {
		return "", newValidationError(ErrCodeTooLong,
			fmt.Sprintf("Currency code cannot be longer than %d characters", maxLen))
	}

	code := strings.ToUpper(input)
	if _, ok := s.codes[code]; !ok {
		msg := s.message
		if msg == "" {
			msg = fmt.Sprintf("Invalid %s currency code", s.prov.Name())
		}
		return "", newValidationError(ErrUnknownCode, msg)
	}
	return code, nil
}
