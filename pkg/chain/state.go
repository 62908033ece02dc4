// Package chain holds the canonical on-chain system state model for the
// Verdant network and its storage codec. The layout mirrors the move objects
// maintained by the consensus layer; read-side services project it into
// client-facing summaries instead of exposing it directly.
package chain

// SupportedStateVersion is the system state layout version this build reads
// and writes. Older or newer layouts are rejected at load time.
const SupportedStateVersion uint64 = 2

// SystemState is the root of the on-chain system object. One instance exists
// per network and is rewritten at every epoch boundary.
type SystemState struct {
	// Version is the layout version of this object, bumped on protocol
	// upgrades that reshape the state.
	Version         uint64 `cbor:"version"`
	Epoch           uint64 `cbor:"epoch"`
	ProtocolVersion uint64 `cbor:"protocol_version"`

	Validators   ValidatorSet     `cbor:"validators"`
	StorageFund  StorageFund      `cbor:"storage_fund"`
	Parameters   SystemParameters `cbor:"parameters"`
	StakeSubsidy StakeSubsidy     `cbor:"stake_subsidy"`

	ReferenceGasPrice uint64 `cbor:"reference_gas_price"`

	// ValidatorReportRecords lists, per reported validator, the set of
	// validators that filed a report against it this epoch. Entry order and
	// reporter order are consensus-determined and preserved as stored.
	ValidatorReportRecords []ReportEntry `cbor:"validator_report_records"`

	// SafeMode is set when the epoch advanced without running full reward
	// distribution. The accumulator fields below hold the amounts carried
	// forward until a normal epoch change processes them.
	SafeMode                        bool   `cbor:"safe_mode"`
	SafeModeStorageRewards          uint64 `cbor:"safe_mode_storage_rewards"`
	SafeModeComputationRewards      uint64 `cbor:"safe_mode_computation_rewards"`
	SafeModeStorageRebates          uint64 `cbor:"safe_mode_storage_rebates"`
	SafeModeNonRefundableStorageFee uint64 `cbor:"safe_mode_non_refundable_storage_fee"`

	EpochStartTimestampMs uint64 `cbor:"epoch_start_timestamp_ms"`
}

// ValidatorSet tracks the active committee plus the tables for validators
// moving in or out of it.
type ValidatorSet struct {
	// TotalStake is the combined stake of the active committee, in base
	// units of SAP.
	TotalStake uint64 `cbor:"total_stake"`

	// ActiveValidators holds the current committee in consensus order.
	ActiveValidators []Validator `cbor:"active_validators"`

	// PendingActiveValidators references the table of validators admitted
	// for the next epoch but not yet active.
	PendingActiveValidators TableRef `cbor:"pending_active_validators"`

	// PendingRemovals holds indices into ActiveValidators of members leaving
	// at the next epoch boundary, in removal order.
	PendingRemovals []uint64 `cbor:"pending_removals"`

	// StakingPoolMappings references the pool ID to validator address table.
	StakingPoolMappings TableRef `cbor:"staking_pool_mappings"`

	// InactivePools references the table of staking pools belonging to
	// validators that have left the committee.
	InactivePools TableRef `cbor:"inactive_pools"`

	// ValidatorCandidates references the table of registered candidates
	// that have not yet been admitted.
	ValidatorCandidates TableRef `cbor:"validator_candidates"`

	// AtRiskValidators lists active validators currently below the stake
	// threshold and the number of consecutive epochs each has been at risk.
	AtRiskValidators []AtRiskEntry `cbor:"at_risk_validators"`
}

// TableRef is a handle to an on-chain table object: its ID plus the number of
// entries, so readers can report table cardinality without loading the table.
type TableRef struct {
	ID   ObjectID `cbor:"id"`
	Size uint64   `cbor:"size"`
}

// AtRiskEntry records how long an active validator has been below the
// minimum stake threshold.
type AtRiskEntry struct {
	Validator    Address `cbor:"validator"`
	EpochsAtRisk uint64  `cbor:"epochs_at_risk"`
}

// ReportEntry records the validators that reported one of their peers.
type ReportEntry struct {
	Reported  Address   `cbor:"reported"`
	Reporters []Address `cbor:"reporters"`
}

// StorageFund holds the network storage fund balances.
type StorageFund struct {
	// TotalObjectStorageRebates is the sum of storage rebates owed back to
	// object owners on deletion.
	TotalObjectStorageRebates uint64 `cbor:"total_object_storage_rebates"`
	// NonRefundableBalance is the fund portion never returned to users.
	NonRefundableBalance uint64 `cbor:"non_refundable_balance"`
}

// SystemParameters holds governance-set protocol parameters. Only a subset is
// surfaced to clients; the rest drive epoch-change logic.
type SystemParameters struct {
	EpochDurationMs                uint64 `cbor:"epoch_duration_ms"`
	StakeSubsidyStartEpoch         uint64 `cbor:"stake_subsidy_start_epoch"`
	MinValidatorCount              uint64 `cbor:"min_validator_count"`
	MaxValidatorCount              uint64 `cbor:"max_validator_count"`
	MinValidatorJoiningStake       uint64 `cbor:"min_validator_joining_stake"`
	ValidatorLowStakeThreshold     uint64 `cbor:"validator_low_stake_threshold"`
	ValidatorVeryLowStakeThreshold uint64 `cbor:"validator_very_low_stake_threshold"`
	ValidatorLowStakeGracePeriod   uint64 `cbor:"validator_low_stake_grace_period"`
}

// StakeSubsidy tracks the emission schedule funding staking rewards.
type StakeSubsidy struct {
	Balance                   uint64 `cbor:"balance"`
	DistributionCounter       uint64 `cbor:"distribution_counter"`
	CurrentDistributionAmount uint64 `cbor:"current_distribution_amount"`
	PeriodLength              uint64 `cbor:"period_length"`
	// DecreaseRate is in basis points applied at the end of each period.
	DecreaseRate uint16 `cbor:"decrease_rate"`
}

// Validator is one member of the active committee.
type Validator struct {
	Metadata ValidatorMetadata `cbor:"metadata"`

	// VotingPower is the normalized consensus weight, out of 10,000.
	VotingPower uint64 `cbor:"voting_power"`

	// OperationCapID identifies the capability object authorizing operations
	// on behalf of this validator.
	OperationCapID ObjectID `cbor:"operation_cap_id"`

	// GasPrice is this validator's gas price quote for the current epoch.
	GasPrice       uint64 `cbor:"gas_price"`
	CommissionRate uint64 `cbor:"commission_rate"`

	StakingPool StakingPool `cbor:"staking_pool"`

	NextEpochStake          uint64 `cbor:"next_epoch_stake"`
	NextEpochGasPrice       uint64 `cbor:"next_epoch_gas_price"`
	NextEpochCommissionRate uint64 `cbor:"next_epoch_commission_rate"`
}

// ValidatorMetadata carries a validator's identity: its account address, key
// material, display fields, and network endpoints. The NextEpoch* fields
// stage rotations that take effect at the next epoch boundary; nil means no
// rotation is staged.
type ValidatorMetadata struct {
	VerdantAddress Address `cbor:"verdant_address"`

	// ProtocolPubkey is the BLS12-381 public key (96-byte compressed G2)
	// used for consensus signatures.
	ProtocolPubkey []byte `cbor:"protocol_pubkey"`
	// NetworkPubkey is the Ed25519 key authenticating p2p connections.
	NetworkPubkey []byte `cbor:"network_pubkey"`
	// WorkerPubkey is the Ed25519 key used by narwhal workers.
	WorkerPubkey []byte `cbor:"worker_pubkey"`
	// ProofOfPossession proves control of the protocol key. Opaque here.
	ProofOfPossession []byte `cbor:"proof_of_possession"`

	Name        string `cbor:"name"`
	Description string `cbor:"description"`
	ImageURL    string `cbor:"image_url"`
	ProjectURL  string `cbor:"project_url"`

	NetAddress     string `cbor:"net_address"`
	P2PAddress     string `cbor:"p2p_address"`
	PrimaryAddress string `cbor:"primary_address"`
	WorkerAddress  string `cbor:"worker_address"`

	NextEpochProtocolPubkey    []byte  `cbor:"next_epoch_protocol_pubkey"`
	NextEpochProofOfPossession []byte  `cbor:"next_epoch_proof_of_possession"`
	NextEpochNetworkPubkey     []byte  `cbor:"next_epoch_network_pubkey"`
	NextEpochWorkerPubkey      []byte  `cbor:"next_epoch_worker_pubkey"`
	NextEpochNetAddress        *string `cbor:"next_epoch_net_address"`
	NextEpochP2PAddress        *string `cbor:"next_epoch_p2p_address"`
	NextEpochPrimaryAddress    *string `cbor:"next_epoch_primary_address"`
	NextEpochWorkerAddress     *string `cbor:"next_epoch_worker_address"`
}

// StakingPool tracks the delegated stake attached to one validator.
type StakingPool struct {
	ID ObjectID `cbor:"id"`

	// ActivationEpoch is the epoch the pool became active, nil for pools
	// belonging to candidates that were never activated.
	ActivationEpoch *uint64 `cbor:"activation_epoch"`
	// DeactivationEpoch is set when the pool leaves the active set.
	DeactivationEpoch *uint64 `cbor:"deactivation_epoch"`

	// SapBalance is the total SAP staked in the pool, in base units.
	SapBalance       uint64 `cbor:"sap_balance"`
	RewardsPool      uint64 `cbor:"rewards_pool"`
	PoolTokenBalance uint64 `cbor:"pool_token_balance"`

	// ExchangeRates references the epoch to pool token exchange rate table.
	ExchangeRates TableRef `cbor:"exchange_rates"`

	PendingStake             uint64 `cbor:"pending_stake"`
	PendingTotalSapWithdraw  uint64 `cbor:"pending_total_sap_withdraw"`
	PendingPoolTokenWithdraw uint64 `cbor:"pending_pool_token_withdraw"`
}
