// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"crypto/rand"
	"errors"
	"fmt"

	sr25519 "github.com/ChainSafe/go-schnorrkel"
	bip39 "github.com/cosmos/go-bip39"
	"github.com/gtank/merlin"

	"github.com/ChainSafe/gossamer-babe/lib/common"
)

const (
	// PublicKeyLength is the expected public key length for sr25519.
	PublicKeyLength = 32
	// SeedLength is the expected seed length for sr25519.
	SeedLength = 32
	// SignatureLength is the expected signature length for sr25519.
	SignatureLength = 64
	// VRFOutputLength is the expected VFR output length
	VRFOutputLength = 32
	// VRFProofLength is the expected VFR proof length
	VRFProofLength = 64
)

// SigningContext is the context for signatures used or created with substrate
var SigningContext = []byte("substrate")

var (
	ErrInvalidSeedLength      = errors.New("seed is not 32 bytes long")
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	ErrInvalidMnemonic        = errors.New("invalid mnemonic")
)

// Keypair is a sr25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *sr25519.SecretKey
}

// PublicKey holds reference to a sr25519.PublicKey
type PublicKey struct {
	key *sr25519.PublicKey
}

// NewKeypair returns a sr25519 Keypair given a schnorrkel secret key
func NewKeypair(priv *sr25519.SecretKey) (*Keypair, error) {
	pub, err := priv.Public()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: priv,
	}, nil
}

// NewKeypairFromSeed returns a new sr25519 Keypair given a 32 byte mini secret key
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: %w", ErrInvalidSeedLength)
	}

	buf := [SeedLength]byte{}
	copy(buf[:], seed)
	msc, err := sr25519.NewMiniSecretKeyFromRaw(buf)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: msc.Public()},
		private: msc.ExpandEd25519(),
	}, nil
}

// NewKeypairFromMnenomic returns a new Keypair using the given mnemonic and password.
func NewKeypairFromMnenomic(mnemonic, password string) (*Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	msk, err := sr25519.MiniSecretKeyFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, err
	}

	return NewKeypair(msk.ExpandEd25519())
}

// GenerateKeypair returns a new sr25519 keypair
func GenerateKeypair() (*Keypair, error) {
	seed := make([]byte, SeedLength)
	_, err := rand.Read(seed)
	if err != nil {
		return nil, err
	}

	return NewKeypairFromSeed(seed)
}

// Sign uses the keypair to sign the message using the sr25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) (sig [SignatureLength]byte, err error) {
	t := sr25519.NewSigningContext(SigningContext, msg)
	s, err := kp.private.Sign(t)
	if err != nil {
		return sig, err
	}
	return s.Encode(), nil
}

// VrfSign creates a VRF output and proof from a message and private key
func (kp *Keypair) VrfSign(t *merlin.Transcript) (
	out [VRFOutputLength]byte, proof [VRFProofLength]byte, err error) {
	inout, p, err := kp.private.VrfSign(t)
	if err != nil {
		return out, proof, err
	}
	return inout.Output().Encode(), p.Encode(), nil
}

// Public returns the public key corresponding to this keypair
func (kp *Keypair) Public() *PublicKey {
	return kp.public
}

// NewPublicKey returns a sr25519 public key from 32 byte input
func NewPublicKey(in [PublicKeyLength]byte) (*PublicKey, error) {
	pub := new(sr25519.PublicKey)
	err := pub.Decode(in)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: pub}, nil
}

// Verify verifies that the public key signed the given message.
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, fmt.Errorf("%w: %d", ErrInvalidSignatureLength, len(sig))
	}

	b := [SignatureLength]byte{}
	copy(b[:], sig)

	s := new(sr25519.Signature)
	err := s.Decode(b)
	if err != nil {
		return false, err
	}

	t := sr25519.NewSigningContext(SigningContext, msg)
	return k.key.Verify(s, t)
}

// VrfVerify confirms that the output and proof are valid given a message and public key
func (k *PublicKey) VrfVerify(t *merlin.Transcript, out [VRFOutputLength]byte,
	proof [VRFProofLength]byte) (bool, error) {
	o := new(sr25519.VrfOutput)
	err := o.Decode(out)
	if err != nil {
		return false, err
	}

	p := new(sr25519.VrfProof)
	err = p.Decode(proof)
	if err != nil {
		return false, err
	}

	return k.key.VrfVerify(t, o, p)
}

// Encode returns the 32 bytes encoding of the public key
func (k *PublicKey) Encode() [PublicKeyLength]byte {
	return k.key.Encode()
}

// Hex returns the public key as a 0x prefixed hex string
func (k *PublicKey) Hex() string {
	enc := k.Encode()
	return common.BytesToHex(enc[:])
}

// VrfInOut is a VRF output attached to the transcript it was created from.
type VrfInOut struct {
	inout *sr25519.VrfInOut
}

// AttachInput attaches the transcript to a VRF output, so
// bytes can be derived from the output.
func AttachInput(output [VRFOutputLength]byte, pub *PublicKey, t *merlin.Transcript) (*VrfInOut, error) {
	out := new(sr25519.VrfOutput)
	err := out.Decode(output)
	if err != nil {
		return nil, err
	}

	inout, err := out.AttachInput(pub.key, t)
	if err != nil {
		return nil, err
	}
	return &VrfInOut{inout: inout}, nil
}

// MakeBytes returns size bytes derived from the VRF output and the context.
func (v *VrfInOut) MakeBytes(size int, context []byte) ([]byte, error) {
	return v.inout.MakeBytes(size, context)
}

// ValidateVRFOutput returns an error if the bytes are not a valid VRF output point.
func ValidateVRFOutput(output [VRFOutputLength]byte) error {
	return new(sr25519.VrfOutput).Decode(output)
}

// ValidateVRFProof returns an error if the bytes are not a valid VRF proof.
func ValidateVRFProof(proof [VRFProofLength]byte) error {
	return new(sr25519.VrfProof).Decode(proof)
}
