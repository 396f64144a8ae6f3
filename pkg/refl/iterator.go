package refl

import (
	"reflect"
)

// Iterator walks a slice or array of arbitrary static element type exactly
// once. It is not safe for concurrent use.
type Iterator struct {
	current int
	length  int
	slice   reflect.Value
}

// SliceIterator creates an Iterator over a slice, an array or a pointer to
// one of those. It returns ErrNotSequence for any other value.
func SliceIterator(sequence any) (*Iterator, error) {
	value, err := sequenceValue(sequence)
	if err != nil {
		return nil, err
	}

	return &Iterator{
		current: 0,
		length:  value.Len(),
		slice:   value,
	}, nil
}

func (it *Iterator) Next() bool {
	return it.current < it.length
}

func (it *Iterator) Len() int {
	return it.length
}

func (it *Iterator) Val() any {
	c := it.current
	it.current++

	return it.slice.Index(c).Interface()
}
