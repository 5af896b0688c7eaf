package ledger

import (
	"fmt"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/sign/schnorr"
	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Signer holds the Schnorr key pair used to sign blocks.
type Signer struct {
	private kyber.Scalar
	public  kyber.Point
}

// NewSigner generates a fresh key pair.
func NewSigner() *Signer {
	private := suite.Scalar().Pick(suite.RandomStream())
	return &Signer{
		private: private,
		public:  suite.Point().Mul(private, nil),
	}
}

// Sign returns a Schnorr signature of msg.
func (s *Signer) Sign(msg []byte) ([]byte, error) {
	sig, err := schnorr.Sign(suite, s.private, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return sig, nil
}

// Public returns the public key matching the signing key.
func (s *Signer) Public() kyber.Point {
	return s.public
}

// VerifySignature checks a Schnorr signature of msg against the public key.
func VerifySignature(public kyber.Point, msg, sig []byte) error {
	if err := schnorr.Verify(suite, public, msg, sig); err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}
	return nil
}
