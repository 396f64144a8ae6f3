package mapper

import (
	"sync"
	"sync/atomic"

	"github.com/justtrackio/typemapper/pkg/log"
)

// invoker applies the transformer of one fixed key to a type-erased value.
type invoker func(source any) (any, error)

// dispatchCache memoizes one invoker per key for the inferred call paths.
// Building an invoker is the only point where the type-erased binding
// happens; every call afterwards is a direct function invocation.
//
// The cache is bounded by a soft ceiling: once the entry count crosses it,
// the whole cache is dropped and entries repopulate lazily. Eviction is
// deliberately coarse, there is no LRU order. Clears are not synchronized
// with concurrent readers; a reader racing a clear just misses and rebuilds
// its entry.
type dispatchCache struct {
	registry *Registry
	logger   log.Logger
	ceiling  int64
	entries  atomic.Pointer[sync.Map]
	count    atomic.Int64
}

func newDispatchCache(registry *Registry, logger log.Logger, ceiling int64) *dispatchCache {
	cache := &dispatchCache{
		registry: registry,
		logger: logger.WithFields(log.Fields{
			"component": "mapper-dispatch",
		}),
		ceiling: ceiling,
	}
	cache.entries.Store(&sync.Map{})

	return cache
}

// provide returns the memoized invoker for the key, building and storing it
// on a miss. Racing builders may both construct an invoker, only one is
// stored and both callers proceed with a correct one.
func (c *dispatchCache) provide(key Key) invoker {
	entries := c.entries.Load()

	if stored, ok := entries.Load(key); ok {
		return stored.(invoker)
	}

	built := c.build(key)

	stored, loaded := entries.LoadOrStore(key, built)
	if loaded {
		return stored.(invoker)
	}

	if c.count.Add(1) > c.ceiling {
		c.clear()
	}

	return built
}

// build creates the invoker closure for a key. The registry lookup happens at
// invocation time, so a transformer registered after the invoker was built is
// still found and a missing one fails with a fresh *NotFoundError per call.
// Transformer errors pass through with their original identity.
func (c *dispatchCache) build(key Key) invoker {
	return func(source any) (any, error) {
		transformer, err := c.registry.Resolve(key)
		if err != nil {
			return nil, err
		}

		return transformer.Transform(source)
	}
}

// clear drops all entries at once by swapping in a fresh map. Writers racing
// the swap may store into the old map; their entries are rebuilt on demand.
func (c *dispatchCache) clear() {
	c.entries.Store(&sync.Map{})
	c.count.Store(0)

	c.logger.Debug("entry count exceeded ceiling of %d, cleared dispatch cache", c.ceiling)
}

// len returns the number of cached invokers.
func (c *dispatchCache) len() int {
	count := 0

	c.entries.Load().Range(func(_ any, _ any) bool {
		count++

		return true
	})

	return count
}
