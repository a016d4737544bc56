package routeguard

import "errors"

// Domain errors for route-table handling.
var (
	// ErrMalformedTable is returned when a route table cannot be decoded.
	ErrMalformedTable = errors.New("routeguard.malformed_table")
)
