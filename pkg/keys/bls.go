package keys

import (
	"fmt"

	bls12381 "github.com/drand/kyber-bls12381"
)

var blsSuite = bls12381.NewBLS12381Suite()

// BLS12381PublicKey is a validator protocol public key: a compressed point on
// the G2 subgroup of BLS12-381. It serializes to JSON as standard base64.
type BLS12381PublicKey []byte

// ParseBLS12381PublicKey validates raw key bytes. The bytes must be a 96-byte
// compressed encoding of a point in the G2 subgroup.
func ParseBLS12381PublicKey(b []byte) (BLS12381PublicKey, error) {
	if len(b) != BLS12381PublicKeyLen {
		return nil, fmt.Errorf("%w: bls12-381 key must be %d bytes, got %d", ErrMalformedKey, BLS12381PublicKeyLen, len(b))
	}
	if err := blsSuite.G2().Point().UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedKey, err)
	}
	k := make(BLS12381PublicKey, BLS12381PublicKeyLen)
	copy(k, b)
	return k, nil
}

// Bytes returns the compressed point encoding.
func (k BLS12381PublicKey) Bytes() []byte {
	return []byte(k)
}

func (k BLS12381PublicKey) MarshalJSON() ([]byte, error) {
	return marshalKeyJSON(k)
}

func (k *BLS12381PublicKey) UnmarshalJSON(data []byte) error {
	b, err := unmarshalKeyJSON(data)
	if err != nil {
		return err
	}
	parsed, err := ParseBLS12381PublicKey(b)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
