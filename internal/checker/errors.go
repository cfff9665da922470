package checker

import "errors"

var ErrSizeMismatch = errors.New("list size does not match reference")
var ErrSequenceMismatch = errors.New("list sequence does not match reference")
var ErrInvalidConfig = errors.New("invalid checker config")
