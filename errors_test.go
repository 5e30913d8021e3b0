package unpick

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathErrorAccumulatesSegments(t *testing.T) {
	base := errors.New("boom")

	err := withPath(base, "zip")
	err = withPath(err, "[3]")
	err = withPath(err, "addresses")

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, []string{"addresses", "[3]", "zip"}, pathErr.Path)
	require.Equal(t, "at addresses[3].zip: boom", err.Error())
	require.ErrorIs(t, err, base)
}

func TestNotSupportedErrorIsTypeMismatch(t *testing.T) {
	err := NotSupportedError{}
	require.ErrorIs(t, err, ErrTypeMismatch)
}
