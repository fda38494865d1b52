// Package provider defines sources of valid currency codes. A provider owns
// an immutable set of codes, the maximum code length in that set, and a
// display name. Providers never mutate after construction, so they are safe
// to share across goroutines without locking.
package provider

import "errors"

// CodeProvider defines an interface for named sources of valid currency codes.
type CodeProvider interface {
	// ValidCodes returns a copy of the provider's code set. Mutating the
	// returned map does not affect the provider.
	ValidCodes() map[string]struct{}
	// MaxLength returns the length of the longest code in the set.
	MaxLength() int
	// Name returns a short descriptive label for the provider.
	Name() string
}

// Construction errors. All are reported at provider construction time, never
// deferred to validation.
var (
	// ErrBothFilters indicates both a max-length and a percentage filter were supplied.
	ErrBothFilters = errors.New("cannot specify both a max length and a percentage filter")

	// ErrInvalidMaxLength indicates a non-positive max-length filter value.
	ErrInvalidMaxLength = errors.New("max length must be a positive integer")

	// ErrInvalidPercentage indicates a percentage filter value outside (0, 1].
	ErrInvalidPercentage = errors.New("percentage must be greater than 0 and at most 1")

	// ErrNoProviders indicates a composite provider was built from an empty list.
	ErrNoProviders = errors.New("at least one provider is required")

	// ErrEmptyCodeSet indicates construction or filtering produced no codes at all.
	ErrEmptyCodeSet = errors.New("provider code set is empty")
)
