// Package chaintest builds deterministic system states for tests and seed
// tooling. All key material is derived from fixed seeds, so fixtures are
// stable across runs while still decoding as valid curve points.
package chaintest

import (
	"crypto/ed25519"
	"fmt"

	bls12381 "github.com/drand/kyber-bls12381"
	"golang.org/x/crypto/blake2b"

	"github.com/verdant-network/verdant-api/pkg/chain"
)

var blsSuite = bls12381.NewBLS12381Suite()

// BLSPublicKey returns validator i's protocol public key: a valid compressed
// G2 point derived from a fixed scalar.
func BLSPublicKey(i int) []byte {
	scalar := blsSuite.G2().Scalar().SetInt64(int64(100 + i))
	point := blsSuite.G2().Point().Mul(scalar, nil)
	b, err := point.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

// NetworkPublicKey returns validator i's Ed25519 network key.
func NetworkPublicKey(i int) []byte {
	return ed25519Key(i, 'n')
}

// WorkerPublicKey returns validator i's Ed25519 worker key.
func WorkerPublicKey(i int) []byte {
	return ed25519Key(i, 'w')
}

// AccountPublicKey returns the Ed25519 key validator i's address derives
// from.
func AccountPublicKey(i int) []byte {
	return ed25519Key(i, 'a')
}

// ValidatorAddress returns validator i's account address.
func ValidatorAddress(i int) chain.Address {
	return chain.AddressForKey(chain.AddressSchemeEd25519, AccountPublicKey(i))
}

// ObjectIDFor returns a deterministic object ID for a label.
func ObjectIDFor(label string) chain.ObjectID {
	return chain.ObjectID(blake2b.Sum256([]byte("object/" + label)))
}

func ed25519Key(i int, tag byte) []byte {
	var seed [ed25519.SeedSize]byte
	seed[0] = byte(i)
	seed[1] = tag
	priv := ed25519.NewKeyFromSeed(seed[:])
	return priv.Public().(ed25519.PublicKey)
}

func proofOfPossession(i int) []byte {
	sum := blake2b.Sum384(BLSPublicKey(i))
	return sum[:]
}

// Validator returns a deterministic active validator. Validator 0 carries a
// fully staged next-epoch rotation and an activation epoch; other validators
// have no staged changes and a pool that was never explicitly activated.
func Validator(i int) chain.Validator {
	addr := ValidatorAddress(i)

	meta := chain.ValidatorMetadata{
		VerdantAddress:    addr,
		ProtocolPubkey:    BLSPublicKey(i),
		NetworkPubkey:     NetworkPublicKey(i),
		WorkerPubkey:      WorkerPublicKey(i),
		ProofOfPossession: proofOfPossession(i),

		Name:        fmt.Sprintf("verdant-validator-%d", i),
		Description: fmt.Sprintf("Fixture validator %d", i),
		ImageURL:    fmt.Sprintf("https://validators.verdant.network/%d.png", i),
		ProjectURL:  "https://verdant.network",

		NetAddress:     fmt.Sprintf("/dns/val-%d.verdant.network/tcp/8080/http", i),
		P2PAddress:     fmt.Sprintf("/dns/val-%d.verdant.network/udp/8084", i),
		PrimaryAddress: fmt.Sprintf("/dns/val-%d.verdant.network/udp/8081", i),
		WorkerAddress:  fmt.Sprintf("/dns/val-%d.verdant.network/udp/8082", i),
	}

	pool := chain.StakingPool{
		ID:               ObjectIDFor(fmt.Sprintf("staking-pool-%d", i)),
		SapBalance:       20_000_000_000_000 * uint64(i+1),
		RewardsPool:      150_000_000_000,
		PoolTokenBalance: 20_000_000_000_000 * uint64(i+1),
		ExchangeRates: chain.TableRef{
			ID:   ObjectIDFor(fmt.Sprintf("exchange-rates-%d", i)),
			Size: 8,
		},
		PendingStake:             1_000_000_000,
		PendingTotalSapWithdraw:  500_000_000,
		PendingPoolTokenWithdraw: 500_000_000,
	}

	if i == 0 {
		activation := uint64(3)
		pool.ActivationEpoch = &activation

		next := i + 1000
		nextNet := fmt.Sprintf("/dns/val-%d-next.verdant.network/tcp/8080/http", i)
		nextP2P := fmt.Sprintf("/dns/val-%d-next.verdant.network/udp/8084", i)
		nextPrimary := fmt.Sprintf("/dns/val-%d-next.verdant.network/udp/8081", i)
		nextWorker := fmt.Sprintf("/dns/val-%d-next.verdant.network/udp/8082", i)

		meta.NextEpochProtocolPubkey = BLSPublicKey(next)
		meta.NextEpochProofOfPossession = proofOfPossession(next)
		meta.NextEpochNetworkPubkey = NetworkPublicKey(next)
		meta.NextEpochWorkerPubkey = WorkerPublicKey(next)
		meta.NextEpochNetAddress = &nextNet
		meta.NextEpochP2PAddress = &nextP2P
		meta.NextEpochPrimaryAddress = &nextPrimary
		meta.NextEpochWorkerAddress = &nextWorker
	}

	return chain.Validator{
		Metadata:       meta,
		VotingPower:    5000,
		OperationCapID: ObjectIDFor(fmt.Sprintf("operation-cap-%d", i)),
		GasPrice:       1000,
		CommissionRate: 200,
		StakingPool:    pool,

		NextEpochStake:          pool.SapBalance + 1_000_000_000,
		NextEpochGasPrice:       1100,
		NextEpochCommissionRate: 200,
	}
}

// State returns a deterministic two-validator system state exercising every
// feature of the model: staged rotations, pending removals, at-risk entries,
// and report records.
func State() *chain.SystemState {
	v0 := Validator(0)
	v1 := Validator(1)

	return &chain.SystemState{
		Version:         chain.SupportedStateVersion,
		Epoch:           7,
		ProtocolVersion: 17,

		Validators: chain.ValidatorSet{
			TotalStake:       v0.StakingPool.SapBalance + v1.StakingPool.SapBalance,
			ActiveValidators: []chain.Validator{v0, v1},
			PendingActiveValidators: chain.TableRef{
				ID:   ObjectIDFor("pending-active-validators"),
				Size: 2,
			},
			PendingRemovals: []uint64{1},
			StakingPoolMappings: chain.TableRef{
				ID:   ObjectIDFor("staking-pool-mappings"),
				Size: 2,
			},
			InactivePools: chain.TableRef{
				ID:   ObjectIDFor("inactive-pools"),
				Size: 0,
			},
			ValidatorCandidates: chain.TableRef{
				ID:   ObjectIDFor("validator-candidates"),
				Size: 5,
			},
			AtRiskValidators: []chain.AtRiskEntry{
				{Validator: v1.Metadata.VerdantAddress, EpochsAtRisk: 3},
			},
		},

		StorageFund: chain.StorageFund{
			TotalObjectStorageRebates: 9_000_000_000,
			NonRefundableBalance:      1_000_000_000,
		},

		Parameters: chain.SystemParameters{
			EpochDurationMs:                86_400_000,
			StakeSubsidyStartEpoch:         20,
			MinValidatorCount:              4,
			MaxValidatorCount:              150,
			MinValidatorJoiningStake:       30_000_000_000_000,
			ValidatorLowStakeThreshold:     20_000_000_000_000,
			ValidatorVeryLowStakeThreshold: 15_000_000_000_000,
			ValidatorLowStakeGracePeriod:   7,
		},

		StakeSubsidy: chain.StakeSubsidy{
			Balance:                   750_000_000_000_000,
			DistributionCounter:       12,
			CurrentDistributionAmount: 1_000_000_000_000,
			PeriodLength:              10,
			DecreaseRate:              1000,
		},

		ReferenceGasPrice: 1000,

		ValidatorReportRecords: []chain.ReportEntry{
			{
				Reported:  v1.Metadata.VerdantAddress,
				Reporters: []chain.Address{v0.Metadata.VerdantAddress},
			},
		},

		EpochStartTimestampMs: 1_700_000_000_000,
	}
}
