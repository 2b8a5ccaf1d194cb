package redis

import "time"

const (
	// DefaultConnectTimeout bounds dialing and the initial ping.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultIOTimeout bounds each read and write. Cached reports are tens of KB.
	DefaultIOTimeout = 3 * time.Second
	DefaultPoolSize  = 20
)
