package keys

import (
	"fmt"

	"filippo.io/edwards25519"
)

// Ed25519PublicKey is a validator network or worker public key. It serializes
// to JSON as standard base64.
type Ed25519PublicKey []byte

// ParseEd25519PublicKey validates raw key bytes. The bytes must be a 32-byte
// canonical encoding of a point on edwards25519.
func ParseEd25519PublicKey(b []byte) (Ed25519PublicKey, error) {
	if len(b) != Ed25519PublicKeyLen {
		return nil, fmt.Errorf("%w: ed25519 key must be %d bytes, got %d", ErrMalformedKey, Ed25519PublicKeyLen, len(b))
	}
	if _, err := (&edwards25519.Point{}).SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedKey, err)
	}
	k := make(Ed25519PublicKey, Ed25519PublicKeyLen)
	copy(k, b)
	return k, nil
}

// Bytes returns the raw point encoding.
func (k Ed25519PublicKey) Bytes() []byte {
	return []byte(k)
}

func (k Ed25519PublicKey) MarshalJSON() ([]byte, error) {
	return marshalKeyJSON(k)
}

func (k *Ed25519PublicKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalKeyJSON(data)
	if err != nil {
		return err
	}
	parsed, err := ParseEd25519PublicKey(b)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
