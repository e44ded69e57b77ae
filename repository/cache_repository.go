package repository

import "context"

// CacheRepository stores serialized estimate results. A miss is reported with
// ok == false; implementations never return stale entries past their TTL.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
