package unpick

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// ValueOf extracts the value behind the given scalar view as a T. Supported
// target types are string, bool, the signed and unsigned integer types
// (range checked), float32, float64, [uuid.UUID], and any type whose pointer
// implements [encoding.TextUnmarshaler]. Requesting any other type fails
// with a [NotSupportedError].
func ValueOf[T any](scalar ScalarSource) (T, error) {
	var value T

	switch target := any(&value).(type) {
	case *bool:
		boolValue, err := scalar.Bool()
		if err != nil {
			return value, fmt.Errorf("get bool value: %w", err)
		}

		*target = boolValue

	case *string:
		stringValue, err := scalar.String()
		if err != nil {
			return value, fmt.Errorf("get string value: %w", err)
		}

		*target = stringValue

	case *int:
		intValue, err := signedOf[int](scalar, math.MinInt, math.MaxInt)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *int8:
		intValue, err := signedOf[int8](scalar, math.MinInt8, math.MaxInt8)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *int16:
		intValue, err := signedOf[int16](scalar, math.MinInt16, math.MaxInt16)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *int32:
		intValue, err := signedOf[int32](scalar, math.MinInt32, math.MaxInt32)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *int64:
		intValue, err := signedOf[int64](scalar, math.MinInt64, math.MaxInt64)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *uint:
		intValue, err := unsignedOf[uint](scalar, math.MaxUint)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *uint8:
		intValue, err := unsignedOf[uint8](scalar, math.MaxUint8)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *uint16:
		intValue, err := unsignedOf[uint16](scalar, math.MaxUint16)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *uint32:
		intValue, err := unsignedOf[uint32](scalar, math.MaxUint32)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *uint64:
		intValue, err := unsignedOf[uint64](scalar, math.MaxUint64)
		if err != nil {
			return value, err
		}

		*target = intValue

	case *float32:
		floatValue, err := scalar.Float()
		if err != nil {
			return value, fmt.Errorf("get float value: %w", err)
		}

		*target = float32(floatValue)

	case *float64:
		floatValue, err := scalar.Float()
		if err != nil {
			return value, fmt.Errorf("get float value: %w", err)
		}

		*target = floatValue

	case *uuid.UUID:
		text, err := scalar.String()
		if err != nil {
			return value, fmt.Errorf("get string value: %w", err)
		}

		id, err := uuid.Parse(text)
		if err != nil {
			return value, fmt.Errorf("parse uuid %q: %w", text, errors.Join(err, ErrTypeMismatch))
		}

		*target = id

	default:
		if unmarshaler, ok := any(&value).(encoding.TextUnmarshaler); ok {
			text, err := scalar.String()
			if err != nil {
				return value, fmt.Errorf("get string value: %w", err)
			}

			if err := unmarshaler.UnmarshalText([]byte(text)); err != nil {
				return value, fmt.Errorf("unmarshal text %q: %w", text, errors.Join(err, ErrTypeMismatch))
			}

			return value, nil
		}

		return value, NotSupportedError{Type: reflect.TypeFor[T]()}
	}

	return value, nil
}

func signedOf[T constraints.Signed](scalar ScalarSource, minValue, maxValue int64) (T, error) {
	intValue, err := scalar.Int()
	if err != nil {
		return 0, fmt.Errorf("get int value: %w", err)
	}

	if intValue < minValue || intValue > maxValue {
		var zero T
		return 0, fmt.Errorf("invalid %T value %d: %w", zero, intValue, errors.Join(strconv.ErrRange, ErrTypeMismatch))
	}

	return T(intValue), nil
}

func unsignedOf[T constraints.Unsigned](scalar ScalarSource, maxValue uint64) (T, error) {
	uintValue, err := scalar.Uint()
	if err != nil {
		return 0, fmt.Errorf("get uint value: %w", err)
	}

	if uintValue > maxValue {
		var zero T
		return 0, fmt.Errorf("invalid %T value %d: %w", zero, uintValue, errors.Join(strconv.ErrRange, ErrTypeMismatch))
	}

	return T(uintValue), nil
}
