package cache

// NoopCache is used when no cache path is configured; every lookup misses.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (*NoopCache) Get(_ string) ([]byte, bool)  { return nil, false }
func (*NoopCache) Put(_ string, _ []byte) error { return nil }
func (*NoopCache) Close() error                 { return nil }
