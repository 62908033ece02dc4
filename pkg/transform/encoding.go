package transform

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/verdant-network/verdant-api/pkg/chain"
)

// Uint64String is a uint64 that crosses the wire as a decimal string. Many
// JSON clients parse numbers as IEEE 754 doubles and silently lose precision
// above 2^53, so 64-bit chain quantities are never emitted as JSON numbers.
type Uint64String uint64

func (u Uint64String) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, strconv.FormatUint(uint64(u), 10)), nil
}

func (u *Uint64String) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("uint64 values are encoded as decimal strings: %w", err)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 string %q: %w", s, err)
	}
	*u = Uint64String(v)
	return nil
}

// Base64Bytes is an opaque byte buffer that crosses the wire as standard
// base64 with padding.
type Base64Bytes []byte

func (b Base64Bytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Base64Bytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid base64: %w", err)
	}
	*b = raw
	return nil
}

// Address is the wire form of an account address: 0x-prefixed lowercase hex.
type Address [chain.AddressLen]byte

func (a Address) String() string {
	return chain.Address(a).String()
}

func (a Address) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, a.String()), nil
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := chain.ParseAddress(s)
	if err != nil {
		return err
	}
	*a = Address(parsed)
	return nil
}

// ObjectID is the wire form of an object ID: 0x-prefixed lowercase hex.
type ObjectID [chain.ObjectIDLen]byte

func (id ObjectID) String() string {
	return chain.ObjectID(id).String()
}

func (id ObjectID) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, id.String()), nil
}

func (id *ObjectID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := chain.ParseObjectID(s)
	if err != nil {
		return err
	}
	*id = ObjectID(parsed)
	return nil
}

func (a AtRiskValidator) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{a.Address, a.EpochsAtRisk})
}

func (a *AtRiskValidator) UnmarshalJSON(data []byte) error {
	var parts [2]json.RawMessage
	if err := unmarshalPair(data, &parts); err != nil {
		return fmt.Errorf("at-risk entry: %w", err)
	}
	if err := json.Unmarshal(parts[0], &a.Address); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &a.EpochsAtRisk)
}

func (r ReportRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.Reported, r.Reporters})
}

func (r *ReportRecord) UnmarshalJSON(data []byte) error {
	var parts [2]json.RawMessage
	if err := unmarshalPair(data, &parts); err != nil {
		return fmt.Errorf("report record: %w", err)
	}
	if err := json.Unmarshal(parts[0], &r.Reported); err != nil {
		return err
	}
	return json.Unmarshal(parts[1], &r.Reporters)
}

func unmarshalPair(data []byte, parts *[2]json.RawMessage) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("expected a two-element array, got %d elements", len(raw))
	}
	parts[0], parts[1] = raw[0], raw[1]
	return nil
}
