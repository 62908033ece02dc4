package transform_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-network/verdant-api/pkg/chain/chaintest"
	"github.com/verdant-network/verdant-api/pkg/transform"
)

func TestUint64StringJSON(t *testing.T) {
	tests := []struct {
		name string
		in   transform.Uint64String
		want string
	}{
		{"zero", 0, `"0"`},
		{"small", 42, `"42"`},
		{"above 2^53", 1 << 60, `"1152921504606846976"`},
		{"max", math.MaxUint64, `"18446744073709551615"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))

			var back transform.Uint64String
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestUint64StringRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bare number", `42`},
		{"negative", `"-1"`},
		{"not a number", `"12a"`},
		{"empty", `""`},
		{"overflow", `"18446744073709551616"`},
		{"null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u transform.Uint64String
			assert.Error(t, json.Unmarshal([]byte(tt.in), &u))
		})
	}
}

func TestBase64BytesJSON(t *testing.T) {
	b, err := json.Marshal(transform.Base64Bytes{0x01, 0x02, 0xff})
	require.NoError(t, err)
	assert.Equal(t, `"AQL/"`, string(b))

	var back transform.Base64Bytes
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, transform.Base64Bytes{0x01, 0x02, 0xff}, back)

	assert.Error(t, json.Unmarshal([]byte(`"###"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`17`), &back))
}

func TestBase64BytesEmpty(t *testing.T) {
	b, err := json.Marshal(transform.Base64Bytes{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))
}

func TestAddressJSON(t *testing.T) {
	a := transform.Address(chaintest.ValidatorAddress(0))

	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"`+a.String()+`"`, string(b))

	var back transform.Address
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, a, back)

	assert.Error(t, json.Unmarshal([]byte(`"0x1234"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`12`), &back))
}

func TestObjectIDJSON(t *testing.T) {
	id := transform.ObjectID(chaintest.ObjectIDFor("staking-pool-0"))

	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(b))

	var back transform.ObjectID
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, id, back)

	assert.Error(t, json.Unmarshal([]byte(`"0xzz"`), &back))
}
