package wire

import (
	"fmt"
	"math/big"
)

// Tag identifies a handshake message on the wire.
type Tag byte

const (
	TagClientHello Tag = iota
	TagServerHello
	TagClientPublicKey
	TagServerPublicKey
	TagDone
)

// String returns a short name for logging.
func (t Tag) String() string {
	switch t {
	case TagClientHello:
		return "ClientHello"
	case TagServerHello:
		return "ServerHello"
	case TagClientPublicKey:
		return "ClientPublicKey"
	case TagServerPublicKey:
		return "ServerPublicKey"
	case TagDone:
		return "Done"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

// Message is the closed set of handshake frames. Values are immutable
// once constructed and exist only transiently for encode/decode.
type Message interface {
	Tag() Tag
	sealed()
}

// ClientHello opens the exchange.
type ClientHello struct{}

// ServerHello carries the responder's group parameters.
type ServerHello struct {
	P *big.Int
	G *big.Int
}

// ClientPublicKey carries the initiator's public value g^x mod p.
type ClientPublicKey struct {
	X *big.Int
}

// ServerPublicKey carries the responder's public value g^y mod p.
type ServerPublicKey struct {
	Y *big.Int
}

// Done signals the initiator has everything it needs.
type Done struct{}

func (ClientHello) Tag() Tag     { return TagClientHello }
func (ServerHello) Tag() Tag     { return TagServerHello }
func (ClientPublicKey) Tag() Tag { return TagClientPublicKey }
func (ServerPublicKey) Tag() Tag { return TagServerPublicKey }
func (Done) Tag() Tag            { return TagDone }

func (ClientHello) sealed()     {}
func (ServerHello) sealed()     {}
func (ClientPublicKey) sealed() {}
func (ServerPublicKey) sealed() {}
func (Done) sealed()            {}
