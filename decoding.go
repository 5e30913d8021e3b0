package unpick

// Decoding wraps a single pure function from a [Source] to a value of type V.
// A Decoding carries no other state and is never mutated after construction,
// so one instance can be reused across many decode calls and shared between
// goroutines, as long as no two concurrent calls share one Source (sequence
// cursors are mutable per-Source state).
type Decoding[V any] struct {
	run func(Source) (V, error)
}

// New wraps run into a Decoding. run must be pure: calling it multiple times
// with different Sources must be side effect free and independent.
func New[V any](run func(Source) (V, error)) Decoding[V] {
	return Decoding[V]{run: run}
}

// Decode runs the decoding against the given Source.
func (d Decoding[V]) Decode(source Source) (V, error) {
	return d.run(source)
}
