package chain

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnsupportedVersion is returned when decoding a system state whose layout
// version this build does not understand.
var ErrUnsupportedVersion = errors.New("unsupported system state version")

// maxNestedLevels bounds decoder recursion. The state layout is shallow, so
// anything deeper is corrupt input.
const maxNestedLevels = 16

var (
	encMode = mustEncMode(cbor.EncOptions{
		Sort: cbor.SortCoreDeterministic,
	})
	decMode = mustDecMode(cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
		MaxNestedLevels:   maxNestedLevels,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// EncodeState serializes a system state deterministically, so identical
// states produce identical bytes regardless of the writer.
func EncodeState(s *SystemState) ([]byte, error) {
	b, err := encMode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode system state: %w", err)
	}
	return b, nil
}

// DecodeState deserializes a system state and verifies the layout version.
// Unknown fields are rejected rather than silently dropped.
func DecodeState(b []byte) (*SystemState, error) {
	var s SystemState
	if err := decMode.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode system state: %w", err)
	}
	if s.Version != SupportedStateVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, s.Version, SupportedStateVersion)
	}
	return &s, nil
}
