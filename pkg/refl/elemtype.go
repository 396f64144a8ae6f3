package refl

import (
	"errors"
	"reflect"
)

var (
	// ErrNotSequence is returned when a value is neither a slice, an array nor
	// a pointer to one of those.
	ErrNotSequence = errors.New("refl: value is not a sequence")
	// ErrNoElementType is returned when neither the static element type nor
	// any contained element provides type information.
	ErrNoElementType = errors.New("refl: unable to determine the element type of the sequence")
)

// ElementTyper can be implemented by container types to announce the type of
// their elements explicitly. It takes precedence over element inspection and
// works on empty containers.
type ElementTyper interface {
	ElementType() reflect.Type
}

var emptyInterfaceType = reflect.TypeOf((*any)(nil)).Elem()

// ElementType determines the element type of a sequence. Static information
// is preferred over runtime inspection:
//
//  1. the static element type of the slice or array, unless it is the empty
//     interface
//  2. an ElementType announced by the sequence itself via ElementTyper
//  3. the dynamic type of the first non-nil element
//
// Static information (1-2) also covers empty sequences and stays
// authoritative when the elements are a mix of different dynamic types. An
// empty sequence without static type information fails with ErrNoElementType.
func ElementType(sequence any) (reflect.Type, error) {
	if typer, ok := sequence.(ElementTyper); ok {
		if t := typer.ElementType(); t != nil {
			return t, nil
		}
	}

	value, err := sequenceValue(sequence)
	if err != nil {
		return nil, err
	}

	if elem := value.Type().Elem(); elem != emptyInterfaceType {
		return elem, nil
	}

	for i := 0; i < value.Len(); i++ {
		element := value.Index(i).Interface()

		if !IsNil(element) {
			return reflect.TypeOf(element), nil
		}
	}

	return nil, ErrNoElementType
}

func sequenceValue(sequence any) (reflect.Value, error) {
	value := reflect.ValueOf(sequence)

	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}

	if value.Kind() != reflect.Slice && value.Kind() != reflect.Array {
		return reflect.Value{}, ErrNotSequence
	}

	return value, nil
}
