package wire_test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"dhx/internal/protocol/wire"
)

// encode serializes m or fails the test.
func encode(t *testing.T, m wire.Message) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := wire.Encode(&buf, m); err != nil {
		t.Fatalf("Encode(%T): %v", m, err)
	}
	return buf.Bytes()
}

// sampleMessages covers every variant, including a zero magnitude and
// values spanning multiple encoded bytes.
func sampleMessages() []wire.Message {
	big1, _ := new(big.Int).SetString("f1e2d3c4b5a6978812345678deadbeef", 16)
	big2, _ := new(big.Int).SetString("abcdef0123456789abcdef0123456789abcdef", 16)
	return []wire.Message{
		wire.ClientHello{},
		wire.ServerHello{P: big1, G: big.NewInt(2)},
		wire.ServerHello{P: big.NewInt(23), G: big.NewInt(5)},
		wire.ClientPublicKey{X: big2},
		wire.ClientPublicKey{X: big.NewInt(0)},
		wire.ServerPublicKey{Y: big1},
		wire.Done{},
	}
}

func equalMessages(a, b wire.Message) bool {
	switch a := a.(type) {
	case wire.ClientHello:
		_, ok := b.(wire.ClientHello)
		return ok
	case wire.ServerHello:
		bb, ok := b.(wire.ServerHello)
		return ok && a.P.Cmp(bb.P) == 0 && a.G.Cmp(bb.G) == 0
	case wire.ClientPublicKey:
		bb, ok := b.(wire.ClientPublicKey)
		return ok && a.X.Cmp(bb.X) == 0
	case wire.ServerPublicKey:
		bb, ok := b.(wire.ServerPublicKey)
		return ok && a.Y.Cmp(bb.Y) == 0
	case wire.Done:
		_, ok := b.(wire.Done)
		return ok
	default:
		return false
	}
}

func TestRoundTrip(t *testing.T) {
	for _, m := range sampleMessages() {
		enc := encode(t, m)
		got, err := wire.Decode(bytes.NewReader(enc))
		if err != nil {
			t.Fatalf("Decode(%T): %v", m, err)
		}
		if !equalMessages(m, got) {
			t.Fatalf("round trip changed %T: sent %+v, got %+v", m, m, got)
		}
	}
}

func TestDecodeConsumesExactly(t *testing.T) {
	// Two messages back to back on one stream must both decode.
	var buf bytes.Buffer
	if err := wire.Encode(&buf, wire.ServerHello{P: big.NewInt(23), G: big.NewInt(5)}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := wire.Encode(&buf, wire.Done{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := wire.Decode(&buf); err != nil {
		t.Fatalf("first Decode: %v", err)
	}
	second, err := wire.Decode(&buf)
	if err != nil {
		t.Fatalf("second Decode: %v", err)
	}
	if _, ok := second.(wire.Done); !ok {
		t.Fatalf("second message = %T, want Done", second)
	}
}

func TestDecodeTruncated(t *testing.T) {
	// Every proper prefix of every message must fail cleanly, whether
	// the cut lands inside the length field or the magnitude.
	for _, m := range sampleMessages() {
		enc := encode(t, m)
		for cut := 0; cut < len(enc); cut++ {
			_, err := wire.Decode(bytes.NewReader(enc[:cut]))
			if err == nil {
				t.Fatalf("Decode(%T truncated to %d/%d bytes) succeeded", m, cut, len(enc))
			}
			if !errors.Is(err, wire.ErrTruncated) {
				t.Fatalf("Decode(%T truncated to %d bytes): got %v, want ErrTruncated", m, cut, err)
			}
		}
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	for _, tag := range []byte{5, 9, 0xff} {
		_, err := wire.Decode(bytes.NewReader([]byte{tag}))
		if !errors.Is(err, wire.ErrUnknownTag) {
			t.Fatalf("Decode(tag %#x): got %v, want ErrUnknownTag", tag, err)
		}
	}
}

func TestDecodeRejectsOversizedInteger(t *testing.T) {
	// ClientPublicKey declaring a 4 GiB magnitude.
	frame := []byte{byte(wire.TagClientPublicKey), 0xff, 0xff, 0xff, 0xff}
	_, err := wire.Decode(bytes.NewReader(frame))
	if !errors.Is(err, wire.ErrIntegerTooLong) {
		t.Fatalf("Decode(oversized): got %v, want ErrIntegerTooLong", err)
	}
}

func TestZeroEncodesAsEmptyMagnitude(t *testing.T) {
	enc := encode(t, wire.ClientPublicKey{X: big.NewInt(0)})
	want := []byte{byte(wire.TagClientPublicKey), 0, 0, 0, 0}
	if !bytes.Equal(enc, want) {
		t.Fatalf("encoding of zero = %x, want %x", enc, want)
	}
}
