package mapper

import (
	"github.com/justtrackio/typemapper/pkg/log"
)

// DefaultDispatchCeiling is the soft ceiling for the number of cached
// dispatch invokers. Type pair cardinality in a real program is bounded and
// small, so the default is generous.
const DefaultDispatchCeiling = 2048

type settings struct {
	provider        Provider
	logger          log.Logger
	dispatchCeiling int64
}

type Option func(*settings)

func newSettings(options []Option) *settings {
	settings := &settings{
		provider:        NewNopProvider(),
		logger:          log.NewNopLogger(),
		dispatchCeiling: DefaultDispatchCeiling,
	}

	for _, opt := range options {
		opt(settings)
	}

	return settings
}

// WithProvider sets the external provider consulted on registry misses.
func WithProvider(provider Provider) Option {
	return func(s *settings) {
		s.provider = provider
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithDispatchCeiling sets the soft ceiling of the dispatch cache. Once the
// entry count crosses the ceiling the whole cache is cleared and repopulates
// lazily.
func WithDispatchCeiling(ceiling int64) Option {
	return func(s *settings) {
		s.dispatchCeiling = ceiling
	}
}
