package unpick

// DecodeJSON parses raw JSON input and runs the given decoding against the
// root of the document. Malformed input fails with ErrParse before any
// decoding logic runs; otherwise the result of the decoding is returned
// verbatim.
func DecodeJSON[T any](data []byte, d Decoding[T]) (T, error) {
	root, err := ParseJSON(data)
	if err != nil {
		var zero T
		return zero, err
	}

	return d.Decode(root)
}
