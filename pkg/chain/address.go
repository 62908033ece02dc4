package chain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

const (
	// AddressLen is the byte length of a Verdant account address.
	AddressLen = 32
	// ObjectIDLen is the byte length of an on-chain object identifier.
	ObjectIDLen = 32
)

// Address scheme flags, hashed together with the public key bytes when
// deriving an account address.
const (
	AddressSchemeEd25519  byte = 0x00
	AddressSchemeBLS12381 byte = 0x01
)

// Address identifies an account on the Verdant network.
type Address [AddressLen]byte

// ObjectID identifies an on-chain object, such as a staking pool or one of
// the system tables. IDs are assigned at object creation and never reused.
type ObjectID [ObjectIDLen]byte

// AddressForKey derives the account address for a public key under the given
// address scheme: blake2b-256 over the scheme flag followed by the raw key
// bytes.
func AddressForKey(scheme byte, pub []byte) Address {
	buf := make([]byte, 0, len(pub)+1)
	buf = append(buf, scheme)
	buf = append(buf, pub...)
	return Address(blake2b.Sum256(buf))
}

// ParseAddress parses a hex address, with or without a 0x prefix.
func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := decodeHex(s, AddressLen)
	if err != nil {
		return a, fmt.Errorf("parse address: %w", err)
	}
	copy(a[:], b)
	return a, nil
}

// ParseObjectID parses a hex object ID, with or without a 0x prefix.
func ParseObjectID(s string) (ObjectID, error) {
	var id ObjectID
	b, err := decodeHex(s, ObjectIDLen)
	if err != nil {
		return id, fmt.Errorf("parse object id: %w", err)
	}
	copy(id[:], b)
	return id, nil
}

func decodeHex(s string, size int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("expected %d bytes, got %d", size, len(b))
	}
	return b, nil
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (id ObjectID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

// MarshalCBOR encodes the address as a CBOR byte string rather than an array
// of integers.
func (a Address) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a[:])
}

// UnmarshalCBOR decodes a CBOR byte string of exactly AddressLen bytes.
func (a *Address) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != AddressLen {
		return fmt.Errorf("address: expected %d bytes, got %d", AddressLen, len(raw))
	}
	copy(a[:], raw)
	return nil
}

// MarshalCBOR encodes the object ID as a CBOR byte string.
func (id ObjectID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id[:])
}

// UnmarshalCBOR decodes a CBOR byte string of exactly ObjectIDLen bytes.
func (id *ObjectID) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != ObjectIDLen {
		return fmt.Errorf("object id: expected %d bytes, got %d", ObjectIDLen, len(raw))
	}
	copy(id[:], raw)
	return nil
}
