package handshake

import (
	"errors"
	"fmt"
	"io"

	"dhx/internal/crypto"
	"dhx/internal/domain"
	"dhx/internal/protocol/wire"
)

// Protocol violations. Transport and decode errors from the underlying
// stream propagate unchanged.
var (
	ErrUnexpectedMessage = errors.New("handshake: unexpected message for current state")
	ErrBadParameters     = errors.New("handshake: unusable group parameters")
)

// Responder runs the server side of the exchange over rw:
// await ClientHello, send ServerHello{p, g}, await ClientPublicKey,
// send a fresh ServerPublicKey, await Done, then derive the secret.
// params is the shared read-only pair; the key pair is generated fresh
// per call and never reused.
func Responder(rw io.ReadWriter, params domain.GroupParameters) (*domain.Session, error) {
	sess := &domain.Session{Params: params, Phase: domain.PhaseNew}

	msg, err := wire.Decode(rw)
	if err != nil {
		return nil, abort(sess, err)
	}
	if _, ok := msg.(wire.ClientHello); !ok {
		return nil, abort(sess, violation(wire.TagClientHello, msg))
	}

	if err := wire.Encode(rw, wire.ServerHello{P: params.P, G: params.G}); err != nil {
		return nil, abort(sess, err)
	}
	sess.Phase = domain.PhaseParamsExchanged

	msg, err = wire.Decode(rw)
	if err != nil {
		return nil, abort(sess, err)
	}
	cpk, ok := msg.(wire.ClientPublicKey)
	if !ok {
		return nil, abort(sess, violation(wire.TagClientPublicKey, msg))
	}
	sess.PeerPublic = cpk.X
	sess.Phase = domain.PhasePeerKeyReceived

	kp, err := crypto.NewKeyPair(params)
	if err != nil {
		return nil, abort(sess, err)
	}
	sess.Local = kp
	if err := wire.Encode(rw, wire.ServerPublicKey{Y: kp.Public}); err != nil {
		return nil, abort(sess, err)
	}
	sess.Phase = domain.PhaseLocalKeySent

	msg, err = wire.Decode(rw)
	if err != nil {
		return nil, abort(sess, err)
	}
	if _, ok := msg.(wire.Done); !ok {
		return nil, abort(sess, violation(wire.TagDone, msg))
	}

	sess.Secret = crypto.SharedSecret(sess.PeerPublic, sess.Local.Secret, params.P)
	sess.Phase = domain.PhaseEstablished
	return sess, nil
}

// Initiator runs the client side of the exchange over rw:
// send ClientHello, await ServerHello{p, g}, send a fresh
// ClientPublicKey, await ServerPublicKey, send Done, then derive the
// secret.
func Initiator(rw io.ReadWriter) (*domain.Session, error) {
	sess := &domain.Session{Phase: domain.PhaseNew}

	if err := wire.Encode(rw, wire.ClientHello{}); err != nil {
		return nil, abort(sess, err)
	}

	msg, err := wire.Decode(rw)
	if err != nil {
		return nil, abort(sess, err)
	}
	hello, ok := msg.(wire.ServerHello)
	if !ok {
		return nil, abort(sess, violation(wire.TagServerHello, msg))
	}
	params := domain.GroupParameters{P: hello.P, G: hello.G}
	if !params.Valid() {
		return nil, abort(sess, ErrBadParameters)
	}
	sess.Params = params
	sess.Phase = domain.PhaseParamsExchanged

	kp, err := crypto.NewKeyPair(params)
	if err != nil {
		return nil, abort(sess, err)
	}
	sess.Local = kp
	if err := wire.Encode(rw, wire.ClientPublicKey{X: kp.Public}); err != nil {
		return nil, abort(sess, err)
	}
	sess.Phase = domain.PhaseLocalKeySent

	msg, err = wire.Decode(rw)
	if err != nil {
		return nil, abort(sess, err)
	}
	spk, ok := msg.(wire.ServerPublicKey)
	if !ok {
		return nil, abort(sess, violation(wire.TagServerPublicKey, msg))
	}
	sess.PeerPublic = spk.Y
	sess.Phase = domain.PhasePeerKeyReceived

	if err := wire.Encode(rw, wire.Done{}); err != nil {
		return nil, abort(sess, err)
	}

	sess.Secret = crypto.SharedSecret(sess.PeerPublic, sess.Local.Secret, sess.Params.P)
	sess.Phase = domain.PhaseEstablished
	return sess, nil
}

// abort marks the session dead and scrubs any key material generated
// so far. No secret is ever exposed from a session that did not walk
// all five messages.
func abort(sess *domain.Session, err error) error {
	sess.Wipe()
	sess.Secret = nil
	sess.Phase = domain.PhaseAborted
	return err
}

func violation(want wire.Tag, got wire.Message) error {
	return fmt.Errorf("%w: want %s, got %s", ErrUnexpectedMessage, want, got.Tag())
}
