// Package unpick builds typed decoders for structured (JSON-like) data by
// composing small decoding values instead of reflecting over target types.
//
// The [Source] interface describes access to one position within a structured
// document. A [Decoding] wraps a single pure function from a [Source] to a
// typed value. Primitives like [Keyed], [Optional], [Unkeyed] and
// [SingleValue] produce leaf decodings bound to one access mode; combinators
// like [Map], [ReplaceNil] and [Zip2] compose them into decodings for richer
// types without touching the Source themselves. [DecodeJSON] drives a
// decoding against raw JSON input.
package unpick
