package quditvis

import "errors"

var (
	ErrEmptyState        = errors.New("state has no amplitudes")
	ErrDimensionMismatch = errors.New("density matrix must be square")
	ErrInvalidResolution = errors.New("resolution must be positive")
	ErrInvalidQuditDim   = errors.New("qudit dimension must be positive")
	ErrInvalidSize       = errors.New("figure size must be positive")
	ErrNilColormap       = errors.New("colormap is nil")
	ErrPoolClosed        = errors.New("worker pool is closed")
)
