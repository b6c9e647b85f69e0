package tsf

import "errors"

var (
	ErrShortHeader   = errors.New("tsf: short header")
	ErrBadDims       = errors.New("tsf: non-positive grid dimensions")
	ErrSizeMismatch  = errors.New("tsf: file size does not match header")
	ErrTruncatedBody = errors.New("tsf: truncated volume body")
	ErrBodyTooLarge  = errors.New("tsf: volume body too large to buffer")
)
