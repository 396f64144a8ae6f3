package mapper

import (
	"time"

	"github.com/spf13/cast"
)

// NewCastProvider creates a Provider serving transformers for a fixed set of
// built-in scalar pairs, backed by spf13/cast. It is meant to be composed
// behind user providers via NewChainProvider so explicit registrations always
// win:
//
//	mapper.NewMapper(mapper.WithProvider(mapper.NewChainProvider(userProvider, mapper.NewCastProvider())))
func NewCastProvider() Provider {
	entries := map[Key]Transformer{
		KeyOf[string, int]():           NewTransformer(func(source string) (int, error) { return cast.ToIntE(source) }),
		KeyOf[string, int64]():         NewTransformer(func(source string) (int64, error) { return cast.ToInt64E(source) }),
		KeyOf[string, float64]():       NewTransformer(func(source string) (float64, error) { return cast.ToFloat64E(source) }),
		KeyOf[string, bool]():          NewTransformer(func(source string) (bool, error) { return cast.ToBoolE(source) }),
		KeyOf[string, time.Time]():     NewTransformer(func(source string) (time.Time, error) { return cast.ToTimeE(source) }),
		KeyOf[string, time.Duration](): NewTransformer(func(source string) (time.Duration, error) { return cast.ToDurationE(source) }),
		KeyOf[int, string]():           NewTransformer(func(source int) (string, error) { return cast.ToStringE(source) }),
		KeyOf[int, int64]():            NewTransformer(func(source int) (int64, error) { return cast.ToInt64E(source) }),
		KeyOf[int, float64]():          NewTransformer(func(source int) (float64, error) { return cast.ToFloat64E(source) }),
		KeyOf[int64, string]():         NewTransformer(func(source int64) (string, error) { return cast.ToStringE(source) }),
		KeyOf[float64, string]():       NewTransformer(func(source float64) (string, error) { return cast.ToStringE(source) }),
		KeyOf[bool, string]():          NewTransformer(func(source bool) (string, error) { return cast.ToStringE(source) }),
	}

	return ProviderFunc(func(key Key) (Transformer, bool) {
		transformer, ok := entries[key]

		return transformer, ok
	})
}
