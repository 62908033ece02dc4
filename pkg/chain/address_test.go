package chain_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-network/verdant-api/pkg/chain"
	"github.com/verdant-network/verdant-api/pkg/chain/chaintest"
)

func TestAddressForKey(t *testing.T) {
	pub := chaintest.AccountPublicKey(0)

	a := chain.AddressForKey(chain.AddressSchemeEd25519, pub)
	b := chain.AddressForKey(chain.AddressSchemeEd25519, pub)
	assert.Equal(t, a, b, "derivation must be deterministic")

	other := chain.AddressForKey(chain.AddressSchemeBLS12381, pub)
	assert.NotEqual(t, a, other, "scheme flag must separate address spaces")

	otherKey := chain.AddressForKey(chain.AddressSchemeEd25519, chaintest.AccountPublicKey(1))
	assert.NotEqual(t, a, otherKey)
}

func TestAddressString(t *testing.T) {
	a := chaintest.ValidatorAddress(0)

	s := a.String()
	require.Len(t, s, 2+2*chain.AddressLen)
	assert.Equal(t, "0x", s[:2])

	parsed, err := chain.ParseAddress(s)
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	// The prefix is optional on input.
	parsed, err = chain.ParseAddress(s[2:])
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}

func TestParseAddressErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not hex", "0xzz"},
		{"too short", "0xdeadbeef"},
		{"too long", "0x" + "ab00cd00ef00ab00cd00ef00ab00cd00ef00ab00cd00ef00ab00cd00ef00ab00cd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chain.ParseAddress(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestParseObjectID(t *testing.T) {
	id := chaintest.ObjectIDFor("staking-pool-0")

	parsed, err := chain.ParseObjectID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = chain.ParseObjectID("0x00ff")
	assert.Error(t, err)
}

func TestAddressCBOR(t *testing.T) {
	a := chaintest.ValidatorAddress(3)

	b, err := cbor.Marshal(a)
	require.NoError(t, err)

	var back chain.Address
	require.NoError(t, cbor.Unmarshal(b, &back))
	assert.Equal(t, a, back)

	// A byte string of the wrong size must be rejected.
	short, err := cbor.Marshal([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Error(t, cbor.Unmarshal(short, &back))
}

func TestObjectIDCBOR(t *testing.T) {
	id := chaintest.ObjectIDFor("exchange-rates-1")

	b, err := cbor.Marshal(id)
	require.NoError(t, err)

	var back chain.ObjectID
	require.NoError(t, cbor.Unmarshal(b, &back))
	assert.Equal(t, id, back)

	short, err := cbor.Marshal([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Error(t, cbor.Unmarshal(short, &back))
}
