package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Decode failures. Transport errors (timeouts, resets) pass through
// unchanged; these sentinels cover malformed or truncated bytes only.
var (
	ErrUnknownTag     = errors.New("wire: unknown message tag")
	ErrTruncated      = errors.New("wire: truncated message")
	ErrIntegerTooLong = errors.New("wire: integer exceeds length limit")
)

// MaxIntegerBytes caps a declared integer length so a hostile peer
// cannot make the reader allocate arbitrarily. An honest peer never
// comes close: 1 MiB is an eight-million-bit value.
const MaxIntegerBytes = 1 << 20

// Encode writes m to w as a single buffer.
func Encode(w io.Writer, m Message) error {
	var buf []byte
	switch m := m.(type) {
	case ClientHello:
		buf = []byte{byte(TagClientHello)}
	case ServerHello:
		buf = append(buf, byte(TagServerHello))
		buf = appendInt(buf, m.P)
		buf = appendInt(buf, m.G)
	case ClientPublicKey:
		buf = append(buf, byte(TagClientPublicKey))
		buf = appendInt(buf, m.X)
	case ServerPublicKey:
		buf = append(buf, byte(TagServerPublicKey))
		buf = appendInt(buf, m.Y)
	case Done:
		buf = []byte{byte(TagDone)}
	default:
		return fmt.Errorf("wire: cannot encode %T", m)
	}
	_, err := w.Write(buf)
	return err
}

// Decode reads exactly one message from r. The tag byte alone decides
// how many further bytes are consumed. Truncated input yields
// ErrTruncated and an unrecognized tag ErrUnknownTag; neither is ever
// turned into a fabricated message.
func Decode(r io.Reader) (Message, error) {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return nil, readErr(err)
	}

	switch Tag(tag[0]) {
	case TagClientHello:
		return ClientHello{}, nil
	case TagServerHello:
		p, err := readInt(r)
		if err != nil {
			return nil, err
		}
		g, err := readInt(r)
		if err != nil {
			return nil, err
		}
		return ServerHello{P: p, G: g}, nil
	case TagClientPublicKey:
		x, err := readInt(r)
		if err != nil {
			return nil, err
		}
		return ClientPublicKey{X: x}, nil
	case TagServerPublicKey:
		y, err := readInt(r)
		if err != nil {
			return nil, err
		}
		return ServerPublicKey{Y: y}, nil
	case TagDone:
		return Done{}, nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownTag, tag[0])
	}
}

// appendInt appends a 4-byte big-endian length and the big-endian
// magnitude. Zero encodes as length 0 with no magnitude bytes.
func appendInt(buf []byte, v *big.Int) []byte {
	b := v.Bytes()
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

// readInt consumes one length-prefixed integer.
func readInt(r io.Reader) (*big.Int, error) {
	var lenb [4]byte
	if _, err := io.ReadFull(r, lenb[:]); err != nil {
		return nil, readErr(err)
	}
	n := binary.BigEndian.Uint32(lenb[:])
	if n > MaxIntegerBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrIntegerTooLong, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, readErr(err)
	}
	return new(big.Int).SetBytes(b), nil
}

// readErr folds EOF variants into ErrTruncated; everything else is a
// transport error and is returned as-is.
func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
