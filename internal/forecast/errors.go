package forecast

import "errors"

var (
	ErrInsufficientData = errors.New("forecast: insufficient data points")
	ErrNonFinite        = errors.New("forecast: non-finite value")
	ErrSingular         = errors.New("forecast: singular design matrix")
	ErrExplosive        = errors.New("forecast: explosive or non-invertible fit")
)
