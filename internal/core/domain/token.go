package domain

import "errors"

// ErrInvalidToken covers every verification failure: bad signature, malformed
// payload, or expiry. Callers must not rely on the distinction.
var ErrInvalidToken = errors.New("invalid token")
