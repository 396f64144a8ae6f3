package mapper

import (
	"fmt"
	"reflect"
)

// Key identifies an ordered (source type, target type) pair. It is the sole
// key type for both the registry and the dispatch cache. Keys are immutable
// values; two keys are equal iff both type identities are equal. Go's
// comparable struct keys make equality and hashing identity-based and O(1),
// since reflect.Type values are canonical.
type Key struct {
	source reflect.Type
	target reflect.Type
}

// NewKey creates a Key for the given pair of types. Both types have to be
// present.
func NewKey(source reflect.Type, target reflect.Type) (Key, error) {
	if source == nil {
		return Key{}, newArgumentError("source", "the source type has to be present")
	}

	if target == nil {
		return Key{}, newArgumentError("target", "the target type has to be present")
	}

	return Key{
		source: source,
		target: target,
	}, nil
}

// KeyOf creates a Key from the static type parameters S and D.
func KeyOf[S any, D any]() Key {
	return Key{
		source: typeOf[S](),
		target: typeOf[D](),
	}
}

func (k Key) Source() reflect.Type {
	return k.source
}

func (k Key) Target() reflect.Type {
	return k.target
}

func (k Key) String() string {
	return fmt.Sprintf("%s -> %s", typeName(k.source), typeName(k.target))
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
