// Package wire encodes and decodes the five handshake messages.
//
// Each message is a single tag byte followed by zero, one or two
// length-prefixed integers: a 4-byte big-endian length and that many
// bytes of big-endian magnitude. There is no outer framing; a reader
// knows from the tag alone how many fields to consume.
package wire
