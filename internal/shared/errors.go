package shared

import "errors"

// ErrValidation indicates the request failed validation. Each domain
// package carries its own not-found sentinel; validation failures share
// this one so handlers can map them uniformly.
var ErrValidation = errors.New("validation failed")
