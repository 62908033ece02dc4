// Package keys provides the validator public key types surfaced by the read
// API. Constructors validate that the raw bytes decode to a point on the
// expected curve, so a key value in hand is always well formed.
package keys

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedKey is returned when key bytes have the wrong length or do not
// decode to a valid curve point.
var ErrMalformedKey = errors.New("malformed public key")

const (
	// BLS12381PublicKeyLen is the compressed G2 encoding size.
	BLS12381PublicKeyLen = 96
	// Ed25519PublicKeyLen is the raw Ed25519 point size.
	Ed25519PublicKeyLen = 32
)

func marshalKeyJSON(b []byte) ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func unmarshalKeyJSON(data []byte) ([]byte, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedKey, err)
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedKey, err)
	}
	return b, nil
}
