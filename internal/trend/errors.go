package trend

import "errors"

var ErrInvalidTrend = errors.New("trend: invalid predicted_trend")
