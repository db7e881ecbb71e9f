package domain

import "math/big"

// Phase tracks how far a handshake has progressed. Both roles walk the
// same phases; only the order of "local key sent" and "peer key
// received" differs between them.
type Phase int

const (
	PhaseNew Phase = iota
	PhaseParamsExchanged
	PhaseLocalKeySent
	PhasePeerKeyReceived
	PhaseEstablished
	PhaseAborted
)

// String returns a short name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseParamsExchanged:
		return "params-exchanged"
	case PhaseLocalKeySent:
		return "local-key-sent"
	case PhasePeerKeyReceived:
		return "peer-key-received"
	case PhaseEstablished:
		return "established"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one key exchange. It is owned by the
// goroutine running the handshake and must not escape it; Wipe is
// called when the session ends so the exponent and secret do not
// outlive it.
type Session struct {
	Params     GroupParameters
	Local      KeyPair
	PeerPublic *big.Int
	Secret     *big.Int
	Phase      Phase
}

// Established reports whether the handshake completed and a shared
// secret is present. A session never reports true without having
// walked all five messages.
func (s *Session) Established() bool {
	return s.Phase == PhaseEstablished && s.Secret != nil
}

// Wipe scrubs the secret exponent and the shared secret.
func (s *Session) Wipe() {
	s.Local.Wipe()
	wipeInt(s.Secret)
}
