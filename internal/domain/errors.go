package domain

import "errors"

// ErrMalformedInput indicates a collaborator handed over records that
// violate the input contract (end before start, non-monotonic order).
// Synthesis for the affected range is rejected as a whole.
var ErrMalformedInput = errors.New("malformed synthesis input")
