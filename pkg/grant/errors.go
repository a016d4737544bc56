package grant

import "errors"

// Domain errors for grant decoding.
var (
	// ErrMalformedGrant is returned when the authentication payload cannot
	// be decoded at all. Partially missing sections are not an error.
	ErrMalformedGrant = errors.New("grant.malformed_payload")
)
