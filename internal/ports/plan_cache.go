package ports

import "context"

// Contract for caching serialized optimize responses keyed by a request
// digest. A miss is (nil, false, nil); errors are reserved for backend
// failures so callers can degrade to recomputation.
type PlanCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, payload []byte) error
}
