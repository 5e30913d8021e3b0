package unpick

import (
	"errors"
	"fmt"
)

// Map transforms the value produced by a decoding. transform must be a pure,
// total function; failures belong in the inner decoding, not in transform.
// Failures of the inner decoding pass through unchanged.
func Map[A, B any](d Decoding[A], transform func(A) B) Decoding[B] {
	return New(func(source Source) (B, error) {
		value, err := d.Decode(source)
		if err != nil {
			var zero B
			return zero, err
		}

		return transform(value), nil
	})
}

// ReplaceNil substitutes fallback exactly when the inner decoding yields
// nil. Failures of the inner decoding pass through unchanged; in particular
// a present-but-mistyped value still fails with ErrTypeMismatch rather than
// producing the fallback.
func ReplaceNil[T any](d Decoding[*T], fallback T) Decoding[T] {
	return New(func(source Source) (T, error) {
		value, err := d.Decode(source)
		if err != nil {
			var zero T
			return zero, err
		}

		if value == nil {
			return fallback, nil
		}

		return *value, nil
	})
}

// Zip2 runs both decodings against the same Source and combines their
// values. Evaluation is left to right and short-circuits on the first
// failure, so when both operands would fail the left failure wins. Both
// operands must address independent keys or positions unless sequential
// reads are intentionally being ordered through a shared cursor.
func Zip2[A, B, Z any](da Decoding[A], db Decoding[B], combine func(A, B) Z) Decoding[Z] {
	return New(func(source Source) (Z, error) {
		var zero Z

		a, err := da.Decode(source)
		if err != nil {
			return zero, err
		}

		b, err := db.Decode(source)
		if err != nil {
			return zero, err
		}

		return combine(a, b), nil
	})
}

// pair carries the intermediate value of the right fold that builds the
// higher-arity zips out of Zip2.
type pair[A, B any] struct {
	first  A
	second B
}

func toPair[A, B any](first A, second B) pair[A, B] {
	return pair[A, B]{first: first, second: second}
}

// Zip3 composes three decodings; see Zip2 for the evaluation policy.
func Zip3[A, B, C, Z any](da Decoding[A], db Decoding[B], dc Decoding[C], combine func(A, B, C) Z) Decoding[Z] {
	tail := Zip2(db, dc, toPair[B, C])

	return Zip2(da, tail, func(a A, rest pair[B, C]) Z {
		return combine(a, rest.first, rest.second)
	})
}

// Zip4 composes four decodings; see Zip2 for the evaluation policy.
func Zip4[A, B, C, D, Z any](da Decoding[A], db Decoding[B], dc Decoding[C], dd Decoding[D], combine func(A, B, C, D) Z) Decoding[Z] {
	tail := Zip3(db, dc, dd, toTriple[B, C, D])

	return Zip2(da, tail, func(a A, rest triple[B, C, D]) Z {
		return combine(a, rest.first, rest.second, rest.third)
	})
}

// Zip5 composes five decodings; see Zip2 for the evaluation policy.
func Zip5[A, B, C, D, E, Z any](da Decoding[A], db Decoding[B], dc Decoding[C], dd Decoding[D], de Decoding[E], combine func(A, B, C, D, E) Z) Decoding[Z] {
	tail := Zip4(db, dc, dd, de, func(b B, c C, d D, e E) pair[pair[B, C], pair[D, E]] {
		return toPair(toPair(b, c), toPair(d, e))
	})

	return Zip2(da, tail, func(a A, rest pair[pair[B, C], pair[D, E]]) Z {
		return combine(a, rest.first.first, rest.first.second, rest.second.first, rest.second.second)
	})
}

type triple[A, B, C any] struct {
	first  A
	second B
	third  C
}

func toTriple[A, B, C any](first A, second B, third C) triple[A, B, C] {
	return triple[A, B, C]{first: first, second: second, third: third}
}

// At runs a decoding against the child Source stored under the given key,
// decoding one level deeper into an object-shaped position. Failures of the
// inner decoding are annotated with the key.
func At[T any](key Key, d Decoding[T]) Decoding[T] {
	return New(func(source Source) (T, error) {
		var zero T

		child, err := childOf(source, key)
		if err != nil {
			return zero, err
		}

		value, err := d.Decode(child)
		if err != nil {
			return zero, withPath(err, string(key))
		}

		return value, nil
	})
}

// Slice drains the current array-shaped position, decoding every element
// with d until the cursor is exhausted. Element failures are annotated with
// the element index.
func Slice[T any](d Decoding[T]) Decoding[[]T] {
	return New(func(source Source) ([]T, error) {
		sequence, err := source.Sequence()
		if err != nil {
			return nil, fmt.Errorf("as sequence: %w", err)
		}

		var values []T

		for {
			index := sequence.Index()

			element, err := sequence.Next()
			if errors.Is(err, ErrEndOfSequence) {
				return values, nil
			}

			if err != nil {
				return nil, withPath(err, indexSegment(index))
			}

			value, err := d.Decode(element)
			if err != nil {
				return nil, withPath(err, indexSegment(index))
			}

			values = append(values, value)
		}
	})
}
