package unpick

import (
	"errors"
	"fmt"
	"strconv"
)

// StringScalar adapts a string to a scalar-only Source. It parses primitive
// values using strconv.ParseInt, strconv.ParseUint, strconv.ParseFloat and
// strconv.ParseBool; string values are returned as is.
type StringScalar string

var (
	_ Source       = StringScalar("")
	_ ScalarSource = StringScalar("")
)

func (s StringScalar) Keyed() (KeyedSource, error) {
	return nil, ErrTypeMismatch
}

func (s StringScalar) Sequence() (SequenceSource, error) {
	return nil, ErrTypeMismatch
}

func (s StringScalar) Scalar() (ScalarSource, error) {
	return s, nil
}

func (s StringScalar) Bool() (bool, error) {
	parsedValue, err := strconv.ParseBool(string(s))
	return handleSyntaxErr(string(s), parsedValue, err)
}

func (s StringScalar) Int() (int64, error) {
	parsedValue, err := strconv.ParseInt(string(s), 10, 64)
	return handleSyntaxErr(string(s), parsedValue, err)
}

func (s StringScalar) Uint() (uint64, error) {
	parsedValue, err := strconv.ParseUint(string(s), 10, 64)
	return handleSyntaxErr(string(s), parsedValue, err)
}

func (s StringScalar) Float() (float64, error) {
	parsedValue, err := strconv.ParseFloat(string(s), 64)
	return handleSyntaxErr(string(s), parsedValue, err)
}

func (s StringScalar) String() (string, error) {
	return string(s), nil
}

func handleSyntaxErr[T any](inputValue string, value T, err error) (T, error) {
	if err != nil {
		var zeroValue T
		err := fmt.Errorf("parse %q: %w", inputValue, err)
		return zeroValue, errors.Join(err, ErrTypeMismatch)
	}

	return value, nil
}
