package transform

import (
	"errors"
	"fmt"

	"github.com/verdant-network/verdant-api/pkg/chain"
	"github.com/verdant-network/verdant-api/pkg/keys"
)

// EpochSummaryFromState projects the internal system state into its
// client-facing summary. The conversion is all or nothing: if any validator
// carries key material that fails to decode, no summary is returned.
//
// Source ordering is preserved throughout. Empty source lists become empty
// summary lists, never null.
func EpochSummaryFromState(s *chain.SystemState) (*EpochSummary, error) {
	if s == nil {
		return nil, errors.New("nil system state")
	}

	active := make([]ValidatorSummary, 0, len(s.Validators.ActiveValidators))
	for i := range s.Validators.ActiveValidators {
		v := &s.Validators.ActiveValidators[i]
		vs, err := ValidatorSummaryFromValidator(v)
		if err != nil {
			return nil, fmt.Errorf("validator %d (%s): %w", i, v.Metadata.VerdantAddress, err)
		}
		active = append(active, *vs)
	}

	removals := make([]Uint64String, 0, len(s.Validators.PendingRemovals))
	for _, idx := range s.Validators.PendingRemovals {
		removals = append(removals, Uint64String(idx))
	}

	atRisk := make([]AtRiskValidator, 0, len(s.Validators.AtRiskValidators))
	for _, e := range s.Validators.AtRiskValidators {
		atRisk = append(atRisk, AtRiskValidator{
			Address:      Address(e.Validator),
			EpochsAtRisk: Uint64String(e.EpochsAtRisk),
		})
	}

	reports := make([]ReportRecord, 0, len(s.ValidatorReportRecords))
	for _, e := range s.ValidatorReportRecords {
		reports = append(reports, ReportRecord{
			Reported:  Address(e.Reported),
			Reporters: addresses(e.Reporters),
		})
	}

	return &EpochSummary{
		Epoch:              Uint64String(s.Epoch),
		ProtocolVersion:    Uint64String(s.ProtocolVersion),
		SystemStateVersion: Uint64String(s.Version),

		StorageFundTotalObjectStorageRebates: Uint64String(s.StorageFund.TotalObjectStorageRebates),
		StorageFundNonRefundableBalance:      Uint64String(s.StorageFund.NonRefundableBalance),

		ReferenceGasPrice: Uint64String(s.ReferenceGasPrice),

		SafeMode:                        s.SafeMode,
		SafeModeStorageRewards:          Uint64String(s.SafeModeStorageRewards),
		SafeModeComputationRewards:      Uint64String(s.SafeModeComputationRewards),
		SafeModeStorageRebates:          Uint64String(s.SafeModeStorageRebates),
		SafeModeNonRefundableStorageFee: Uint64String(s.SafeModeNonRefundableStorageFee),

		EpochStartTimestampMs: Uint64String(s.EpochStartTimestampMs),
		EpochDurationMs:       Uint64String(s.Parameters.EpochDurationMs),

		StakeSubsidyStartEpoch: Uint64String(s.Parameters.StakeSubsidyStartEpoch),

		MaxValidatorCount:              Uint64String(s.Parameters.MaxValidatorCount),
		MinValidatorJoiningStake:       Uint64String(s.Parameters.MinValidatorJoiningStake),
		ValidatorLowStakeThreshold:     Uint64String(s.Parameters.ValidatorLowStakeThreshold),
		ValidatorVeryLowStakeThreshold: Uint64String(s.Parameters.ValidatorVeryLowStakeThreshold),
		ValidatorLowStakeGracePeriod:   Uint64String(s.Parameters.ValidatorLowStakeGracePeriod),

		StakeSubsidyBalance:                   Uint64String(s.StakeSubsidy.Balance),
		StakeSubsidyDistributionCounter:       Uint64String(s.StakeSubsidy.DistributionCounter),
		StakeSubsidyCurrentDistributionAmount: Uint64String(s.StakeSubsidy.CurrentDistributionAmount),
		StakeSubsidyPeriodLength:              Uint64String(s.StakeSubsidy.PeriodLength),
		StakeSubsidyDecreaseRate:              s.StakeSubsidy.DecreaseRate,

		TotalStake: Uint64String(s.Validators.TotalStake),

		ActiveValidators: active,

		PendingActiveValidatorsID:   ObjectID(s.Validators.PendingActiveValidators.ID),
		PendingActiveValidatorsSize: Uint64String(s.Validators.PendingActiveValidators.Size),

		PendingRemovals: removals,

		StakingPoolMappingsID:   ObjectID(s.Validators.StakingPoolMappings.ID),
		StakingPoolMappingsSize: Uint64String(s.Validators.StakingPoolMappings.Size),
		InactivePoolsID:         ObjectID(s.Validators.InactivePools.ID),
		InactivePoolsSize:       Uint64String(s.Validators.InactivePools.Size),
		ValidatorCandidatesID:   ObjectID(s.Validators.ValidatorCandidates.ID),
		ValidatorCandidatesSize: Uint64String(s.Validators.ValidatorCandidates.Size),

		AtRiskValidators:       atRisk,
		ValidatorReportRecords: reports,
	}, nil
}

// ValidatorSummaryFromValidator projects one active validator. Mandatory key
// material must decode to valid curve points; staged next-epoch keys are
// validated only when present.
func ValidatorSummaryFromValidator(v *chain.Validator) (*ValidatorSummary, error) {
	if v == nil {
		return nil, errors.New("nil validator")
	}
	m := &v.Metadata

	protocolKey, err := keys.ParseBLS12381PublicKey(m.ProtocolPubkey)
	if err != nil {
		return nil, fmt.Errorf("protocol public key: %w", err)
	}
	networkKey, err := keys.ParseEd25519PublicKey(m.NetworkPubkey)
	if err != nil {
		return nil, fmt.Errorf("network public key: %w", err)
	}
	workerKey, err := keys.ParseEd25519PublicKey(m.WorkerPubkey)
	if err != nil {
		return nil, fmt.Errorf("worker public key: %w", err)
	}

	nextProtocolKey, err := optionalBLSKey(m.NextEpochProtocolPubkey)
	if err != nil {
		return nil, fmt.Errorf("next epoch protocol public key: %w", err)
	}
	nextNetworkKey, err := optionalEd25519Key(m.NextEpochNetworkPubkey)
	if err != nil {
		return nil, fmt.Errorf("next epoch network public key: %w", err)
	}
	nextWorkerKey, err := optionalEd25519Key(m.NextEpochWorkerPubkey)
	if err != nil {
		return nil, fmt.Errorf("next epoch worker public key: %w", err)
	}

	return &ValidatorSummary{
		Address: Address(m.VerdantAddress),

		ProtocolPublicKey:      protocolKey,
		NetworkPublicKey:       networkKey,
		WorkerPublicKey:        workerKey,
		ProofOfPossessionBytes: Base64Bytes(m.ProofOfPossession),

		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		ProjectURL:  m.ProjectURL,

		NetAddress:     m.NetAddress,
		P2PAddress:     m.P2PAddress,
		PrimaryAddress: m.PrimaryAddress,
		WorkerAddress:  m.WorkerAddress,

		NextEpochProtocolPublicKey: nextProtocolKey,
		NextEpochProofOfPossession: optionalBytes(m.NextEpochProofOfPossession),
		NextEpochNetworkPublicKey:  nextNetworkKey,
		NextEpochWorkerPublicKey:   nextWorkerKey,
		NextEpochNetAddress:        m.NextEpochNetAddress,
		NextEpochP2PAddress:        m.NextEpochP2PAddress,
		NextEpochPrimaryAddress:    m.NextEpochPrimaryAddress,
		NextEpochWorkerAddress:     m.NextEpochWorkerAddress,

		VotingPower: Uint64String(v.VotingPower),

		OperationCapID: ObjectID(v.OperationCapID),

		GasPrice:       Uint64String(v.GasPrice),
		CommissionRate: Uint64String(v.CommissionRate),

		NextEpochStake:          Uint64String(v.NextEpochStake),
		NextEpochGasPrice:       Uint64String(v.NextEpochGasPrice),
		NextEpochCommissionRate: Uint64String(v.NextEpochCommissionRate),

		StakingPoolID: ObjectID(v.StakingPool.ID),

		StakingPoolActivationEpoch:   optionalUint64(v.StakingPool.ActivationEpoch),
		StakingPoolDeactivationEpoch: optionalUint64(v.StakingPool.DeactivationEpoch),

		StakingPoolSapBalance: Uint64String(v.StakingPool.SapBalance),
		RewardsPool:           Uint64String(v.StakingPool.RewardsPool),
		PoolTokenBalance:      Uint64String(v.StakingPool.PoolTokenBalance),

		PendingStake:             Uint64String(v.StakingPool.PendingStake),
		PendingTotalSapWithdraw:  Uint64String(v.StakingPool.PendingTotalSapWithdraw),
		PendingPoolTokenWithdraw: Uint64String(v.StakingPool.PendingPoolTokenWithdraw),

		ExchangeRatesID:   ObjectID(v.StakingPool.ExchangeRates.ID),
		ExchangeRatesSize: Uint64String(v.StakingPool.ExchangeRates.Size),
	}, nil
}

func addresses(in []chain.Address) []Address {
	out := make([]Address, 0, len(in))
	for _, a := range in {
		out = append(out, Address(a))
	}
	return out
}

func optionalUint64(p *uint64) *Uint64String {
	if p == nil {
		return nil
	}
	u := Uint64String(*p)
	return &u
}

func optionalBytes(b []byte) *Base64Bytes {
	if b == nil {
		return nil
	}
	v := Base64Bytes(b)
	return &v
}

func optionalBLSKey(b []byte) (*keys.BLS12381PublicKey, error) {
	if b == nil {
		return nil, nil
	}
	k, err := keys.ParseBLS12381PublicKey(b)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func optionalEd25519Key(b []byte) (*keys.Ed25519PublicKey, error) {
	if b == nil {
		return nil, nil
	}
	k, err := keys.ParseEd25519PublicKey(b)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
