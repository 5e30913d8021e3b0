package unpick

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ParseJSON parses raw JSON into the root Source of the document. Numbers
// are kept as json.Number so integer precision survives the round trip.
// Fails with ErrParse if data is not a single well formed JSON document.
//
// Parsing once and decoding many times is fine as long as every concurrent
// decode gets its own Source; sequence cursors live on the Source, so one
// parsed document should not be decoded from two goroutines at once.
func ParseJSON(data []byte) (Source, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, errors.Join(fmt.Errorf("parse json: %w", err), ErrParse)
	}

	if decoder.More() {
		return nil, fmt.Errorf("trailing data after document: %w", ErrParse)
	}

	return &jsonSource{value: value}, nil
}

// jsonSource adapts one position of a decoded JSON value tree to Source.
// The sequence view is cached so repeated Sequence calls share one cursor.
type jsonSource struct {
	value    any
	sequence *jsonSequence
}

func (s *jsonSource) Keyed() (KeyedSource, error) {
	object, ok := s.value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s is not an object: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	return jsonObject(object), nil
}

func (s *jsonSource) Sequence() (SequenceSource, error) {
	if s.sequence != nil {
		return s.sequence, nil
	}

	elements, ok := s.value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not an array: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	s.sequence = &jsonSequence{elements: elements}

	return s.sequence, nil
}

func (s *jsonSource) Scalar() (ScalarSource, error) {
	switch s.value.(type) {
	case map[string]any, []any:
		return nil, fmt.Errorf("%s is not a scalar: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	return jsonScalar{value: s.value}, nil
}

type jsonObject map[string]any

func (o jsonObject) Get(key Key) (Source, error) {
	value, ok := o[string(key)]
	if !ok || value == nil {
		// a key holding JSON null behaves like an absent key
		return nil, ErrKeyNotFound
	}

	return &jsonSource{value: value}, nil
}

type jsonSequence struct {
	elements []any
	cursor   int
}

func (q *jsonSequence) Next() (Source, error) {
	if q.cursor >= len(q.elements) {
		return nil, ErrEndOfSequence
	}

	element := q.elements[q.cursor]
	q.cursor++

	return &jsonSource{value: element}, nil
}

func (q *jsonSequence) Index() int {
	return q.cursor
}

type jsonScalar struct {
	value any
}

func (s jsonScalar) Bool() (bool, error) {
	boolValue, ok := s.value.(bool)
	if !ok {
		return false, fmt.Errorf("%s is not a bool: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	return boolValue, nil
}

func (s jsonScalar) Int() (int64, error) {
	number, ok := s.value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%s is not a number: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	intValue, err := number.Int64()
	if err != nil {
		return 0, fmt.Errorf("number %s as int: %w", number, errors.Join(err, ErrTypeMismatch))
	}

	return intValue, nil
}

func (s jsonScalar) Uint() (uint64, error) {
	number, ok := s.value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%s is not a number: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	uintValue, err := strconv.ParseUint(number.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number %s as uint: %w", number, errors.Join(err, ErrTypeMismatch))
	}

	return uintValue, nil
}

func (s jsonScalar) Float() (float64, error) {
	number, ok := s.value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%s is not a number: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	floatValue, err := number.Float64()
	if err != nil {
		return 0, fmt.Errorf("number %s as float: %w", number, errors.Join(err, ErrTypeMismatch))
	}

	return floatValue, nil
}

func (s jsonScalar) String() (string, error) {
	stringValue, ok := s.value.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string: %w", jsonShape(s.value), ErrTypeMismatch)
	}

	return stringValue, nil
}

func jsonShape(value any) string {
	switch value.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}
