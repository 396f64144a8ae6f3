package mapper

import (
	"fmt"
)

// Transformer is the type-erased form of a pure transformation function as it
// is stored in the registry. Implementations have to be safe for concurrent
// use; a transformer created once may be invoked from many goroutines.
type Transformer interface {
	Transform(source any) (any, error)
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(source any) (any, error)

func (f TransformerFunc) Transform(source any) (any, error) {
	return f(source)
}

// NewTransformer wraps a typed transformation function into its type-erased
// form. The erasure boundary introduces no error wrapping of its own: an
// error returned by fn reaches the caller with its original identity.
func NewTransformer[S any, D any](fn func(source S) (D, error)) Transformer {
	return TransformerFunc(func(source any) (any, error) {
		s, ok := source.(S)
		if !ok {
			return nil, newArgumentError("source", fmt.Sprintf("expected a value of type %s, got %T", typeOf[S](), source))
		}

		return fn(s)
	})
}

// Registration associates a Key with the single transformer instance which
// should serve it. Name identifies the implementation in conflict messages
// and defaults to the dynamic type of the transformer.
type Registration struct {
	Key         Key
	Transformer Transformer
	Name        string
}

// NewRegistration creates a Registration for the static pair (S, D).
func NewRegistration[S any, D any](fn func(source S) (D, error)) Registration {
	return Registration{
		Key:         KeyOf[S, D](),
		Transformer: NewTransformer(fn),
	}
}

func (r Registration) name() string {
	if r.Name != "" {
		return r.Name
	}

	return fmt.Sprintf("%T", r.Transformer)
}
