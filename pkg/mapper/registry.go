package mapper

import (
	"fmt"
	"strings"
	"sync"

	"github.com/justtrackio/typemapper/pkg/funk"
	"github.com/justtrackio/typemapper/pkg/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry holds at most one transformer per Key. Missing entries are
// resolved lazily through the configured Provider and the result is cached
// for the lifetime of the registry; a failed resolution is never cached.
//
// The population contract is get-or-create, not exactly-once-compute: two
// goroutines racing on the same absent key may both consult the provider, but
// only one result is durably stored and both observe the stored winner. Keep
// it that way, do not replace the map with a per-key mutex or singleflight.
type Registry struct {
	provider Provider
	logger   log.Logger
	entries  sync.Map // Key -> Transformer
}

// NewRegistry creates a Registry. Without options it uses a provider which
// never has anything and a nop logger.
func NewRegistry(options ...Option) *Registry {
	settings := newSettings(options)

	return &Registry{
		provider: settings.provider,
		logger: settings.logger.WithFields(log.Fields{
			"component": "mapper-registry",
		}),
	}
}

// Resolve returns the transformer for the given key. On a hit the stored
// instance is returned without consulting the provider. On a miss the
// provider is asked; if it has nothing, Resolve fails with *NotFoundError and
// nothing is cached, so a transformer appearing later is still picked up.
func (r *Registry) Resolve(key Key) (Transformer, error) {
	if stored, ok := r.entries.Load(key); ok {
		return stored.(Transformer), nil
	}

	transformer, ok := r.provider.Provide(key)
	if !ok || transformer == nil {
		return nil, newNotFoundError(key)
	}

	stored, loaded := r.entries.LoadOrStore(key, transformer)
	if !loaded {
		r.logger.Debug("resolved transformer for %s via provider", key)
	}

	return stored.(Transformer), nil
}

// Register applies a batch of registrations. The whole batch is validated in
// one pass before any of it is committed: if any key would receive more than
// one transformer instance, either within the batch or on top of an already
// committed one, the entire batch is rejected with a *ConfigurationError
// enumerating every offending key and every competing implementation name.
func (r *Registry) Register(registrations []Registration) error {
	candidates := make(map[Key][]string, len(registrations))

	for _, registration := range registrations {
		if registration.Key.source == nil || registration.Key.target == nil {
			return newArgumentError("registrations", fmt.Sprintf("registration %s misses a type identity", registration.name()))
		}

		if registration.Transformer == nil {
			return newArgumentError("registrations", fmt.Sprintf("registration %s misses a transformer", registration.name()))
		}

		candidates[registration.Key] = append(candidates[registration.Key], registration.name())
	}

	keys := maps.Keys(candidates)
	slices.SortFunc(keys, func(a Key, b Key) int {
		return strings.Compare(a.String(), b.String())
	})

	conflicting := funk.Filter(keys, func(key Key) bool {
		if len(candidates[key]) > 1 {
			return true
		}

		_, exists := r.entries.Load(key)

		return exists
	})

	if len(conflicting) > 0 {
		conflicts := funk.Map(conflicting, func(key Key) *RegistrationConflict {
			implementations := candidates[key]

			if stored, ok := r.entries.Load(key); ok {
				implementations = append([]string{fmt.Sprintf("%T", stored)}, implementations...)
			}

			return &RegistrationConflict{
				Key:             key,
				Implementations: implementations,
			}
		})

		return newConfigurationError(conflicts)
	}

	for _, registration := range registrations {
		r.entries.Store(registration.Key, registration.Transformer)
	}

	r.logger.Info("registered %d transformers", len(registrations))

	return nil
}

// Len returns the number of stored transformers.
func (r *Registry) Len() int {
	count := 0

	r.entries.Range(func(_ any, _ any) bool {
		count++

		return true
	})

	return count
}
