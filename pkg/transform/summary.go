// Package transform projects the internal chain system state into the flat,
// client-facing summary served by the read API. Conversions are pure and
// validate key material as they go; a summary is only produced if every field
// of the source state converts cleanly.
package transform

import "github.com/verdant-network/verdant-api/pkg/keys"

// EpochSummary is the client-facing view of the on-chain system state. All
// 64-bit quantities are decimal strings, byte buffers are standard base64,
// and addresses and object IDs are 0x-prefixed hex.
type EpochSummary struct {
	// Epoch is the current epoch number.
	Epoch Uint64String `json:"epoch"`
	// ProtocolVersion is the protocol rule set in force this epoch.
	ProtocolVersion Uint64String `json:"protocol_version"`
	// SystemStateVersion is the layout version of the underlying state object.
	SystemStateVersion Uint64String `json:"system_state_version"`

	StorageFundTotalObjectStorageRebates Uint64String `json:"storage_fund_total_object_storage_rebates"`
	StorageFundNonRefundableBalance      Uint64String `json:"storage_fund_non_refundable_balance"`

	// ReferenceGasPrice is the committee-agreed gas price for this epoch.
	ReferenceGasPrice Uint64String `json:"reference_gas_price"`

	// SafeMode reports whether the last epoch change skipped full reward
	// distribution. The four accumulator fields below carry the deferred
	// amounts until a normal epoch change drains them.
	SafeMode                        bool         `json:"safe_mode"`
	SafeModeStorageRewards          Uint64String `json:"safe_mode_storage_rewards"`
	SafeModeComputationRewards      Uint64String `json:"safe_mode_computation_rewards"`
	SafeModeStorageRebates          Uint64String `json:"safe_mode_storage_rebates"`
	SafeModeNonRefundableStorageFee Uint64String `json:"safe_mode_non_refundable_storage_fee"`

	EpochStartTimestampMs Uint64String `json:"epoch_start_timestamp_ms"`
	EpochDurationMs       Uint64String `json:"epoch_duration_ms"`

	// StakeSubsidyStartEpoch is the first epoch in which subsidies are paid.
	StakeSubsidyStartEpoch Uint64String `json:"stake_subsidy_start_epoch"`

	// MaxValidatorCount caps the active committee size.
	MaxValidatorCount Uint64String `json:"max_validator_count"`
	// MinValidatorJoiningStake is the stake floor for joining the committee.
	MinValidatorJoiningStake Uint64String `json:"min_validator_joining_stake"`
	// Validators below the low threshold for more than the grace period are
	// removed; below the very-low threshold removal is immediate.
	ValidatorLowStakeThreshold     Uint64String `json:"validator_low_stake_threshold"`
	ValidatorVeryLowStakeThreshold Uint64String `json:"validator_very_low_stake_threshold"`
	ValidatorLowStakeGracePeriod   Uint64String `json:"validator_low_stake_grace_period"`

	StakeSubsidyBalance                   Uint64String `json:"stake_subsidy_balance"`
	StakeSubsidyDistributionCounter       Uint64String `json:"stake_subsidy_distribution_counter"`
	StakeSubsidyCurrentDistributionAmount Uint64String `json:"stake_subsidy_current_distribution_amount"`
	StakeSubsidyPeriodLength              Uint64String `json:"stake_subsidy_period_length"`
	// StakeSubsidyDecreaseRate is in basis points and fits in 16 bits, so it
	// stays a JSON number.
	StakeSubsidyDecreaseRate uint16 `json:"stake_subsidy_decrease_rate"`

	// TotalStake is the combined stake of the active committee in base units
	// of SAP.
	TotalStake Uint64String `json:"total_stake"`

	// ActiveValidators is the current committee in consensus order.
	ActiveValidators []ValidatorSummary `json:"active_validators"`

	PendingActiveValidatorsID   ObjectID     `json:"pending_active_validators_id"`
	PendingActiveValidatorsSize Uint64String `json:"pending_active_validators_size"`

	// PendingRemovals holds indices into ActiveValidators of members leaving
	// at the next epoch boundary.
	PendingRemovals []Uint64String `json:"pending_removals"`

	StakingPoolMappingsID   ObjectID     `json:"staking_pool_mappings_id"`
	StakingPoolMappingsSize Uint64String `json:"staking_pool_mappings_size"`
	InactivePoolsID         ObjectID     `json:"inactive_pools_id"`
	InactivePoolsSize       Uint64String `json:"inactive_pools_size"`
	ValidatorCandidatesID   ObjectID     `json:"validator_candidates_id"`
	ValidatorCandidatesSize Uint64String `json:"validator_candidates_size"`

	// AtRiskValidators lists validators below the stake threshold and how
	// many consecutive epochs each has been at risk.
	AtRiskValidators []AtRiskValidator `json:"at_risk_validators"`

	// ValidatorReportRecords lists, per reported validator, the validators
	// that reported it this epoch.
	ValidatorReportRecords []ReportRecord `json:"validator_report_records"`
}

// AtRiskValidator pairs a validator address with its at-risk epoch count. On
// the wire it is a two-element array, not an object.
type AtRiskValidator struct {
	Address      Address
	EpochsAtRisk Uint64String
}

// ReportRecord pairs a reported validator with its reporters. On the wire it
// is a two-element array, not an object.
type ReportRecord struct {
	Reported  Address
	Reporters []Address
}

// ValidatorSummary is the client-facing view of one active validator.
type ValidatorSummary struct {
	// Address is the validator's account address.
	Address Address `json:"address"`

	// ProtocolPublicKey is the BLS12-381 consensus key.
	ProtocolPublicKey keys.BLS12381PublicKey `json:"protocol_public_key"`
	// NetworkPublicKey is the Ed25519 p2p key.
	NetworkPublicKey keys.Ed25519PublicKey `json:"network_public_key"`
	// WorkerPublicKey is the Ed25519 worker key.
	WorkerPublicKey keys.Ed25519PublicKey `json:"worker_public_key"`
	// ProofOfPossessionBytes proves control of the protocol key. It is
	// carried opaquely and not validated here.
	ProofOfPossessionBytes Base64Bytes `json:"proof_of_possession_bytes"`

	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ProjectURL  string `json:"project_url"`

	NetAddress     string `json:"net_address"`
	P2PAddress     string `json:"p2p_address"`
	PrimaryAddress string `json:"primary_address"`
	WorkerAddress  string `json:"worker_address"`

	// The next_epoch fields stage rotations that take effect at the next
	// epoch boundary. Absent fields are omitted; a staged empty string is
	// kept distinct from an absent one.
	NextEpochProtocolPublicKey *keys.BLS12381PublicKey `json:"next_epoch_protocol_public_key,omitempty"`
	NextEpochProofOfPossession *Base64Bytes            `json:"next_epoch_proof_of_possession,omitempty"`
	NextEpochNetworkPublicKey  *keys.Ed25519PublicKey  `json:"next_epoch_network_public_key,omitempty"`
	NextEpochWorkerPublicKey   *keys.Ed25519PublicKey  `json:"next_epoch_worker_public_key,omitempty"`
	NextEpochNetAddress        *string                 `json:"next_epoch_net_address,omitempty"`
	NextEpochP2PAddress        *string                 `json:"next_epoch_p2p_address,omitempty"`
	NextEpochPrimaryAddress    *string                 `json:"next_epoch_primary_address,omitempty"`
	NextEpochWorkerAddress     *string                 `json:"next_epoch_worker_address,omitempty"`

	// VotingPower is the normalized consensus weight, out of 10,000.
	VotingPower Uint64String `json:"voting_power"`

	OperationCapID ObjectID `json:"operation_cap_id"`

	GasPrice       Uint64String `json:"gas_price"`
	CommissionRate Uint64String `json:"commission_rate"`

	NextEpochStake          Uint64String `json:"next_epoch_stake"`
	NextEpochGasPrice       Uint64String `json:"next_epoch_gas_price"`
	NextEpochCommissionRate Uint64String `json:"next_epoch_commission_rate"`

	StakingPoolID ObjectID `json:"staking_pool_id"`

	// StakingPoolActivationEpoch is absent for pools never activated.
	StakingPoolActivationEpoch *Uint64String `json:"staking_pool_activation_epoch,omitempty"`
	// StakingPoolDeactivationEpoch is absent while the pool is active.
	StakingPoolDeactivationEpoch *Uint64String `json:"staking_pool_deactivation_epoch,omitempty"`

	// StakingPoolSapBalance is the total SAP staked in the pool.
	StakingPoolSapBalance Uint64String `json:"staking_pool_sap_balance"`
	RewardsPool           Uint64String `json:"rewards_pool"`
	PoolTokenBalance      Uint64String `json:"pool_token_balance"`

	PendingStake             Uint64String `json:"pending_stake"`
	PendingTotalSapWithdraw  Uint64String `json:"pending_total_sap_withdraw"`
	PendingPoolTokenWithdraw Uint64String `json:"pending_pool_token_withdraw"`

	ExchangeRatesID   ObjectID     `json:"exchange_rates_id"`
	ExchangeRatesSize Uint64String `json:"exchange_rates_size"`
}
