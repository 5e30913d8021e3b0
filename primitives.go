package unpick

import (
	"errors"
	"fmt"
	"strconv"
)

// SingleValue decodes the current Source position as a single scalar of
// type T.
func SingleValue[T any]() Decoding[T] {
	return New(func(source Source) (T, error) {
		var zero T

		scalar, err := source.Scalar()
		if err != nil {
			return zero, fmt.Errorf("as scalar: %w", err)
		}

		return ValueOf[T](scalar)
	})
}

// Keyed decodes the scalar of type T stored under the given key of the
// current object-shaped position. Fails with ErrKeyNotFound if the key is
// absent and with ErrTypeMismatch if the value has the wrong type.
func Keyed[T any](key Key) Decoding[T] {
	return New(func(source Source) (T, error) {
		var zero T

		child, err := childOf(source, key)
		if err != nil {
			return zero, err
		}

		scalar, err := child.Scalar()
		if err != nil {
			return zero, withPath(fmt.Errorf("as scalar: %w", err), string(key))
		}

		value, err := ValueOf[T](scalar)
		if err != nil {
			return zero, withPath(err, string(key))
		}

		return value, nil
	})
}

// Optional decodes the scalar of type T stored under the given key, yielding
// nil if the key is absent. A value that is present but has the wrong type
// still fails with ErrTypeMismatch; absence is the only condition mapped
// to nil.
func Optional[T any](key Key) Decoding[*T] {
	return New(func(source Source) (*T, error) {
		child, err := childOf(source, key)
		switch {
		case errors.Is(err, ErrKeyNotFound):
			return nil, nil
		case err != nil:
			return nil, err
		}

		scalar, err := child.Scalar()
		if err != nil {
			return nil, withPath(fmt.Errorf("as scalar: %w", err), string(key))
		}

		value, err := ValueOf[T](scalar)
		if err != nil {
			return nil, withPath(err, string(key))
		}

		return &value, nil
	})
}

// Unkeyed decodes the next element of the current array-shaped position as a
// scalar of type T, advancing the sequence cursor exactly once per
// successful decode. Fails with ErrEndOfSequence once the array is
// exhausted.
func Unkeyed[T any]() Decoding[T] {
	return New(func(source Source) (T, error) {
		var zero T

		sequence, err := source.Sequence()
		if err != nil {
			return zero, fmt.Errorf("as sequence: %w", err)
		}

		index := sequence.Index()

		element, err := sequence.Next()
		if err != nil {
			return zero, withPath(err, indexSegment(index))
		}

		scalar, err := element.Scalar()
		if err != nil {
			return zero, withPath(fmt.Errorf("as scalar: %w", err), indexSegment(index))
		}

		value, err := ValueOf[T](scalar)
		if err != nil {
			return zero, withPath(err, indexSegment(index))
		}

		return value, nil
	})
}

// childOf resolves the child under key, annotating lookup failures with
// the key.
func childOf(source Source, key Key) (Source, error) {
	keyed, err := source.Keyed()
	if err != nil {
		return nil, fmt.Errorf("as keyed: %w", err)
	}

	child, err := keyed.Get(key)
	if err != nil {
		return nil, withPath(err, string(key))
	}

	return child, nil
}

func indexSegment(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}
