package handshake_test

import (
	"errors"
	"math/big"
	"net"
	"testing"

	"dhx/internal/crypto"
	"dhx/internal/domain"
	"dhx/internal/protocol/handshake"
	"dhx/internal/protocol/wire"
)

// testParams generates a 64-bit parameter set; small and fast, for
// tests only.
func testParams(t *testing.T) domain.GroupParameters {
	t.Helper()
	params, err := crypto.GenerateGroupParameters(64)
	if err != nil {
		t.Fatalf("GenerateGroupParameters: %v", err)
	}
	return params
}

type responderResult struct {
	sess *domain.Session
	err  error
}

// runResponder starts the responder on its own pipe end.
func runResponder(rw net.Conn, params domain.GroupParameters) <-chan responderResult {
	ch := make(chan responderResult, 1)
	go func() {
		sess, err := handshake.Responder(rw, params)
		ch <- responderResult{sess, err}
	}()
	return ch
}

func TestExchangeAgrees(t *testing.T) {
	params := testParams(t)
	responderEnd, initiatorEnd := net.Pipe()
	defer responderEnd.Close()
	defer initiatorEnd.Close()

	ch := runResponder(responderEnd, params)

	initiatorSess, err := handshake.Initiator(initiatorEnd)
	if err != nil {
		t.Fatalf("Initiator: %v", err)
	}
	res := <-ch
	if res.err != nil {
		t.Fatalf("Responder: %v", res.err)
	}

	if !initiatorSess.Established() || !res.sess.Established() {
		t.Fatalf("phases: initiator %s, responder %s; want both established",
			initiatorSess.Phase, res.sess.Phase)
	}
	if initiatorSess.Secret.Cmp(res.sess.Secret) != 0 {
		t.Fatalf("shared secrets differ: %v vs %v", initiatorSess.Secret, res.sess.Secret)
	}
	if initiatorSess.Params.P.Cmp(params.P) != 0 || initiatorSess.Params.G.Cmp(params.G) != 0 {
		t.Fatal("initiator did not adopt the responder's parameters")
	}
}

func TestFreshKeysPerSession(t *testing.T) {
	params := testParams(t)

	secrets := make([]*big.Int, 0, 2)
	for i := 0; i < 2; i++ {
		responderEnd, initiatorEnd := net.Pipe()
		ch := runResponder(responderEnd, params)
		sess, err := handshake.Initiator(initiatorEnd)
		if err != nil {
			t.Fatalf("Initiator: %v", err)
		}
		if res := <-ch; res.err != nil {
			t.Fatalf("Responder: %v", res.err)
		}
		secrets = append(secrets, new(big.Int).Set(sess.Secret))
		responderEnd.Close()
		initiatorEnd.Close()
	}
	if secrets[0].Cmp(secrets[1]) == 0 {
		t.Fatal("two sessions produced the same shared secret")
	}
}

func TestResponderAbortsOnWrongFirstMessage(t *testing.T) {
	params := testParams(t)
	responderEnd, initiatorEnd := net.Pipe()
	defer responderEnd.Close()
	defer initiatorEnd.Close()

	ch := runResponder(responderEnd, params)

	// Done where ClientHello belongs.
	if err := wire.Encode(initiatorEnd, wire.Done{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	res := <-ch
	if !errors.Is(res.err, handshake.ErrUnexpectedMessage) {
		t.Fatalf("Responder: got %v, want ErrUnexpectedMessage", res.err)
	}
	if res.sess != nil {
		t.Fatalf("aborted handshake returned a session in phase %s", res.sess.Phase)
	}
}

func TestResponderAbortsOnUnknownTag(t *testing.T) {
	params := testParams(t)
	responderEnd, initiatorEnd := net.Pipe()
	defer responderEnd.Close()
	defer initiatorEnd.Close()

	ch := runResponder(responderEnd, params)

	if _, err := initiatorEnd.Write([]byte{0x7f}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	res := <-ch
	if !errors.Is(res.err, wire.ErrUnknownTag) {
		t.Fatalf("Responder: got %v, want ErrUnknownTag", res.err)
	}
	if res.sess != nil {
		t.Fatal("aborted handshake returned a session")
	}
}

func TestInitiatorRejectsBadParameters(t *testing.T) {
	responderEnd, initiatorEnd := net.Pipe()
	defer responderEnd.Close()
	defer initiatorEnd.Close()

	// Fake responder offering g = p-1, which Valid() must reject.
	go func() {
		if _, err := wire.Decode(responderEnd); err != nil {
			return
		}
		_ = wire.Encode(responderEnd, wire.ServerHello{P: big.NewInt(9), G: big.NewInt(8)})
	}()

	_, err := handshake.Initiator(initiatorEnd)
	if !errors.Is(err, handshake.ErrBadParameters) {
		t.Fatalf("Initiator: got %v, want ErrBadParameters", err)
	}
}

func TestInitiatorAbortsOnPeerHangup(t *testing.T) {
	responderEnd, initiatorEnd := net.Pipe()
	defer initiatorEnd.Close()

	// Peer reads the hello and hangs up before sending parameters.
	go func() {
		buf := make([]byte, 1)
		_, _ = responderEnd.Read(buf)
		responderEnd.Close()
	}()

	sess, err := handshake.Initiator(initiatorEnd)
	if err == nil {
		t.Fatal("Initiator succeeded against a peer that hung up")
	}
	if sess != nil {
		t.Fatal("aborted handshake returned a session")
	}
}
