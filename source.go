package unpick

// Key is a stable, string-backed identifier addressing a field inside an
// object-shaped Source position. Keys are looked up by name, never by
// position.
type Key string

// Source represents one position within a structured document, designed to
// work seamlessly with the [Decoding] values built by this package. It is the
// abstraction a parser adapts its output to; [ParseJSON] returns the built-in
// JSON-backed implementation.
//
// A Source offers three views onto the current position:
//   - **Keyed**: object-shaped data addressed field by field via
//     [KeyedSource.Get].
//   - **Sequence**: array-shaped data consumed element by element via
//     [SequenceSource.Next]. The cursor is the only mutable state in the
//     model: it advances monotonically and never rewinds, and repeated
//     [Source.Sequence] calls on the same position must return the same
//     cursor.
//   - **Scalar**: a single value converted to primitive Go types via
//     [ScalarSource].
//
// If the current position does not have the requested shape, the view method
// must return [ErrTypeMismatch]. There is no requirement for a Source to be
// backed by a materialized document; implementations may generate values on
// demand or stream them from an [io.Reader].
//
// To ease writing custom implementations the package ships two bases:
//
//  1. **[EmptySource]**: fails every view with [ErrTypeMismatch]. Embed it
//     and override only the views your data supports.
//  2. **[StringScalar]**: adapts a plain string to a scalar Source, parsing
//     primitives with the strconv package.
type Source interface {
	// Keyed interprets the current position as an object.
	// Returns ErrTypeMismatch if the position is not object-shaped.
	Keyed() (KeyedSource, error)

	// Sequence interprets the current position as an array and returns its
	// element cursor. Repeated calls return the same cursor.
	// Returns ErrTypeMismatch if the position is not array-shaped.
	Sequence() (SequenceSource, error)

	// Scalar interprets the current position as a single value.
	// Returns ErrTypeMismatch if the position is a container.
	Scalar() (ScalarSource, error)
}

// KeyedSource is the object view of a [Source] position.
type KeyedSource interface {
	// Get returns the child Source under the given key.
	// Returns ErrKeyNotFound if the object does not contain the key.
	// Optional access is expressed by the caller treating ErrKeyNotFound
	// as absence rather than failure.
	Get(key Key) (Source, error)
}

// SequenceSource is the array view of a [Source] position. It is a stateful
// cursor owned by its Source; it must not be shared between concurrent
// decode calls.
type SequenceSource interface {
	// Next returns the Source for the next element and advances the cursor
	// exactly once. Returns ErrEndOfSequence once the sequence is exhausted.
	Next() (Source, error)

	// Index reports how many elements have been consumed so far. It is used
	// to attach element positions to failures.
	Index() int
}

// ScalarSource is the single-value view of a [Source] position. Each
// conversion returns [ErrTypeMismatch] if the value can not be represented
// as the requested type.
type ScalarSource interface {
	// Bool returns the current value as a bool.
	Bool() (bool, error)

	// Int returns the current value as an int64.
	Int() (int64, error)

	// Uint returns the current value as a uint64.
	Uint() (uint64, error)

	// Float returns the current value as a float64.
	Float() (float64, error)

	// String returns the current value as a string.
	String() (string, error)
}

// EmptySource is a Source that fails every view with ErrTypeMismatch. It is
// useful as an embedded base for custom Source implementations.
type EmptySource struct{}

var _ Source = EmptySource{}

func (e EmptySource) Keyed() (KeyedSource, error) {
	return nil, ErrTypeMismatch
}

func (e EmptySource) Sequence() (SequenceSource, error) {
	return nil, ErrTypeMismatch
}

func (e EmptySource) Scalar() (ScalarSource, error) {
	return nil, ErrTypeMismatch
}
