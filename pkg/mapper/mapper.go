package mapper

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/justtrackio/typemapper/pkg/log"
	"github.com/justtrackio/typemapper/pkg/refl"
)

// Mapper is the facade over registry and dispatch cache. It offers four call
// shapes: single value or collection, each either explicit (both types stated
// as type parameters via the package level Map and MapAll functions) or
// inferred (runtime value plus desired target type via the methods).
//
// All operations are synchronous, side-effect free with respect to the
// mapping itself and safe for concurrent use without caller-side locking.
// Construct fresh instances per test instead of sharing a global one.
type Mapper struct {
	registry *Registry
	dispatch *dispatchCache
}

// NewMapper creates a Mapper with a fresh registry.
func NewMapper(options ...Option) *Mapper {
	settings := newSettings(options)

	return NewMapperWithInterfaces(NewRegistry(options...), settings.logger, settings.dispatchCeiling)
}

// NewMapperWithInterfaces creates a Mapper on top of an existing registry.
func NewMapperWithInterfaces(registry *Registry, logger log.Logger, dispatchCeiling int64) *Mapper {
	return &Mapper{
		registry: registry,
		dispatch: newDispatchCache(registry, logger, dispatchCeiling),
	}
}

// Registry returns the underlying registry.
func (m *Mapper) Registry() *Registry {
	return m.registry
}

// Register applies a batch of registrations, see Registry.Register.
func (m *Mapper) Register(registrations []Registration) error {
	return m.registry.Register(registrations)
}

// CacheLen returns the number of cached dispatch invokers.
func (m *Mapper) CacheLen() int {
	return m.dispatch.len()
}

// Map transforms a single value into the given target type, inferring the
// source type from the runtime value. The first call for a pair builds and
// caches the dispatch invoker; later calls dispatch without any reflection.
func (m *Mapper) Map(source any, targetType reflect.Type) (any, error) {
	if refl.IsNil(source) {
		return nil, newArgumentError("source", "the source value has to be present")
	}

	key, err := NewKey(reflect.TypeOf(source), targetType)
	if err != nil {
		return nil, err
	}

	return m.dispatch.provide(key)(source)
}

// MapAll transforms a sequence into a lazy sequence of the given target type.
// The element type is inferred once, preferring static type information over
// first-element inspection, so an empty but statically typed sequence maps to
// an empty result while an empty untyped one fails with *TypeInferenceError.
// Absent elements are silently dropped; the order of the remaining elements
// is preserved and the input is enumerated exactly once.
func (m *Mapper) MapAll(sources any, targetType reflect.Type) (*Seq[any], error) {
	if refl.IsNil(sources) {
		return nil, newArgumentError("sources", "the sources sequence has to be present")
	}

	if targetType == nil {
		return nil, newArgumentError("target", "the target type has to be present")
	}

	elemType, err := refl.ElementType(sources)

	switch {
	case errors.Is(err, refl.ErrNotSequence):
		return nil, newArgumentError("sources", fmt.Sprintf("expected a sequence, got %T", sources))
	case errors.Is(err, refl.ErrNoElementType):
		return nil, &TypeInferenceError{
			Sequence: fmt.Sprintf("%T", sources),
		}
	case err != nil:
		return nil, err
	}

	it, err := refl.SliceIterator(sources)
	if err != nil {
		return nil, newArgumentError("sources", fmt.Sprintf("expected a sequence, got %T", sources))
	}

	key := Key{
		source: elemType,
		target: targetType,
	}
	invoke := m.dispatch.provide(key)

	return newSeq(func() (any, bool, error) {
		for it.Next() {
			source := it.Val()

			if refl.IsNil(source) {
				continue
			}

			target, err := invoke(source)
			if err != nil {
				return nil, false, err
			}

			return target, true, nil
		}

		return nil, false, nil
	}), nil
}

// Map transforms a single value with both types stated explicitly. It
// bypasses the dispatch cache and goes straight to the registry.
func Map[S any, D any](m *Mapper, source S) (D, error) {
	var zero D

	if refl.IsNil(source) {
		return zero, newArgumentError("source", "the source value has to be present")
	}

	transformer, err := m.registry.Resolve(KeyOf[S, D]())
	if err != nil {
		return zero, err
	}

	out, err := transformer.Transform(source)
	if err != nil {
		return zero, err
	}

	return assertTarget[D](out)
}

// MapAll transforms a slice with both types stated explicitly into a lazy,
// single-pass sequence. There is no inference step; absent elements are
// silently dropped. The transformer is resolved on the first produced
// element, so enumerating an empty sequence never touches the registry.
func MapAll[S any, D any](m *Mapper, sources []S) (*Seq[D], error) {
	if sources == nil {
		return nil, newArgumentError("sources", "the sources sequence has to be present")
	}

	var transformer Transformer
	var index int
	key := KeyOf[S, D]()

	return newSeq(func() (D, bool, error) {
		var zero D

		for index < len(sources) {
			source := sources[index]
			index++

			if refl.IsNil(source) {
				continue
			}

			if transformer == nil {
				var err error
				if transformer, err = m.registry.Resolve(key); err != nil {
					return zero, false, err
				}
			}

			out, err := transformer.Transform(source)
			if err != nil {
				return zero, false, err
			}

			target, err := assertTarget[D](out)
			if err != nil {
				return zero, false, err
			}

			return target, true, nil
		}

		return zero, false, nil
	}), nil
}

func assertTarget[D any](out any) (D, error) {
	target, ok := out.(D)
	if !ok {
		return target, fmt.Errorf("transformer returned a value of type %T instead of %s", out, typeOf[D]())
	}

	return target, nil
}
