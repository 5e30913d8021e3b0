package unpick

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSONShapes(t *testing.T) {
	source, err := ParseJSON([]byte(`{"list": [1, 2], "nested": {"a": 1}, "n": 42}`))
	require.NoError(t, err)

	keyed, err := source.Keyed()
	require.NoError(t, err)

	_, err = source.Sequence()
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = source.Scalar()
	require.ErrorIs(t, err, ErrTypeMismatch)

	list, err := keyed.Get("list")
	require.NoError(t, err)

	_, err = list.Keyed()
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = list.Sequence()
	require.NoError(t, err)

	n, err := keyed.Get("n")
	require.NoError(t, err)

	scalar, err := n.Scalar()
	require.NoError(t, err)

	intValue, err := scalar.Int()
	require.NoError(t, err)
	require.Equal(t, int64(42), intValue)
}

func TestParseJSONRejectsMalformedInput(t *testing.T) {
	_, err := ParseJSON([]byte(`{`))
	require.ErrorIs(t, err, ErrParse)

	_, err = ParseJSON([]byte(``))
	require.ErrorIs(t, err, ErrParse)

	_, err = ParseJSON([]byte(`[1, 2] [3]`))
	require.ErrorIs(t, err, ErrParse)
}

func TestJSONKeyedAccess(t *testing.T) {
	source, err := ParseJSON([]byte(`{"name": "Ada", "gone": null}`))
	require.NoError(t, err)

	keyed, err := source.Keyed()
	require.NoError(t, err)

	_, err = keyed.Get("name")
	require.NoError(t, err)

	_, err = keyed.Get("missing")
	require.ErrorIs(t, err, ErrKeyNotFound)

	// an explicit null behaves exactly like an absent key
	_, err = keyed.Get("gone")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestJSONSequenceSharesOneCursor(t *testing.T) {
	source, err := ParseJSON([]byte(`[10, 20]`))
	require.NoError(t, err)

	first, err := source.Sequence()
	require.NoError(t, err)

	second, err := source.Sequence()
	require.NoError(t, err)
	require.Same(t, first, second)

	require.Equal(t, 0, first.Index())

	_, err = first.Next()
	require.NoError(t, err)
	require.Equal(t, 1, second.Index())

	_, err = second.Next()
	require.NoError(t, err)

	_, err = first.Next()
	require.ErrorIs(t, err, ErrEndOfSequence)
}

func TestJSONScalarConversions(t *testing.T) {
	source, err := ParseJSON([]byte(`{"n": 42, "f": 1.5, "s": "text", "b": true}`))
	require.NoError(t, err)

	keyed, err := source.Keyed()
	require.NoError(t, err)

	scalarAt := func(key Key) ScalarSource {
		child, err := keyed.Get(key)
		require.NoError(t, err)

		scalar, err := child.Scalar()
		require.NoError(t, err)

		return scalar
	}

	intValue, err := scalarAt("n").Int()
	require.NoError(t, err)
	require.Equal(t, int64(42), intValue)

	uintValue, err := scalarAt("n").Uint()
	require.NoError(t, err)
	require.Equal(t, uint64(42), uintValue)

	floatValue, err := scalarAt("f").Float()
	require.NoError(t, err)
	require.Equal(t, 1.5, floatValue)

	stringValue, err := scalarAt("s").String()
	require.NoError(t, err)
	require.Equal(t, "text", stringValue)

	boolValue, err := scalarAt("b").Bool()
	require.NoError(t, err)
	require.Equal(t, true, boolValue)

	// cross-type conversions all fail with a type mismatch
	_, err = scalarAt("s").Int()
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = scalarAt("s").Uint()
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = scalarAt("n").Bool()
	require.ErrorIs(t, err, ErrTypeMismatch)

	_, err = scalarAt("b").String()
	require.ErrorIs(t, err, ErrTypeMismatch)

	// a fractional number does not convert to int
	_, err = scalarAt("f").Int()
	require.ErrorIs(t, err, ErrTypeMismatch)
}
