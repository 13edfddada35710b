package cell

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// CachedProvider keeps recently resolved live cells of another provider in an
// LRU cache. Cached metadata is copied on the way in and out so callers
// cannot alter the cache. Cells killed in the underlying provider must be invalidated.
type CachedProvider struct {
	inner CellProvider
	cache *lru.Cache
}

type cacheKey struct {
	outPoint OutPoint
	withData bool
}

// NewCachedProvider wraps the given provider with a cache of the given number
// of entries.
func NewCachedProvider(inner CellProvider, size int) (*CachedProvider, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cannot create cell cache; %v", err)
	}
	return &CachedProvider{inner: inner, cache: cache}, nil
}

func (p *CachedProvider) Cell(outPoint OutPoint, withData bool) CellStatus {
	key := cacheKey{outPoint, withData}
	if meta, ok := p.cache.Get(key); ok {
		return LiveCell(meta.(*CellMeta).Copy())
	}
	status := p.inner.Cell(outPoint, withData)
	if status.IsLive() {
		p.cache.Add(key, status.Meta.Copy())
	}
	return status
}

// Invalidate drops the cached entries of the given out-point.
func (p *CachedProvider) Invalidate(outPoint OutPoint) {
	p.cache.Remove(cacheKey{outPoint, false})
	p.cache.Remove(cacheKey{outPoint, true})
}

// Len returns the number of cached entries.
func (p *CachedProvider) Len() int {
	return p.cache.Len()
}
