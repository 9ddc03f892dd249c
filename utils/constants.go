package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// Pagination bounds applied to list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
