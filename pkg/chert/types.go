package chert

import (
	"time"
)

// Network identifies the chain the client talks to.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkDevnet  Network = "devnet"
)

// Account holds key material for a chain account. The address is a pure
// function of the public key. An account without a private key is watch-only:
// it can be queried but never signs.
type Account struct {
	Address    string `json:"address"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
}

// WatchOnly reports whether the account lacks signing capability.
func (a Account) WatchOnly() bool {
	return a.PrivateKey == ""
}

// Balance is an account balance snapshot. All amounts are decimal strings.
type Balance struct {
	Available string `json:"available"`
	Pending   string `json:"pending"`
	Total     string `json:"total"`
}

// TransactionRequest describes a transaction to be signed and submitted.
// Amount and Fee are decimal strings; they are validated as parseable
// decimals but always transmitted as strings.
type TransactionRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
	Fee    string `json:"fee"`
	Memo   string `json:"memo,omitempty"`
	Nonce  uint64 `json:"nonce,omitempty"`
}

// TransactionStatus is the closed set of transaction states. Only confirmed
// is a terminal success state; failed and rejected are terminal failures;
// pending is non-terminal.
type TransactionStatus string

const (
	TxStatusPending   TransactionStatus = "pending"
	TxStatusConfirmed TransactionStatus = "confirmed"
	TxStatusFailed    TransactionStatus = "failed"
	TxStatusRejected  TransactionStatus = "rejected"
)

// Terminal reports whether the status will not change by further polling.
func (s TransactionStatus) Terminal() bool {
	return s == TxStatusConfirmed || s == TxStatusFailed || s == TxStatusRejected
}

// Transaction is a confirmed or in-flight transaction as reported by the chain.
type Transaction struct {
	Hash        string            `json:"hash"`
	From        string            `json:"from"`
	To          string            `json:"to"`
	Amount      string            `json:"amount"`
	Fee         string            `json:"fee"`
	Memo        string            `json:"memo,omitempty"`
	BlockHeight uint64            `json:"block_height,omitempty"`
	Status      TransactionStatus `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Nonce       uint64            `json:"nonce"`
}

// KeyPair is a hex-encoded public/secret key pair.
type KeyPair struct {
	Public string `json:"public"`
	Secret string `json:"secret"`
}

// StealthKeys holds the two independent key pairs backing a stealth account.
type StealthKeys struct {
	ViewKeyPair  KeyPair `json:"view_keypair"`
	SpendKeyPair KeyPair `json:"spend_keypair"`
}

// StealthAccount is an account reachable through a stealth address. The
// address is a deterministic hash of the view key and spend public key.
type StealthAccount struct {
	Address        string       `json:"address"`
	ViewKey        string       `json:"view_key"`
	SpendPublicKey string       `json:"spend_public_key"`
	Keys           *StealthKeys `json:"keys,omitempty"`
}

// PrivacyLevel selects how strongly a private transaction is shielded.
type PrivacyLevel string

const (
	PrivacyStealth   PrivacyLevel = "stealth"
	PrivacyEncrypted PrivacyLevel = "encrypted"
)

// PrivateTransactionRequest describes a private transaction to be submitted.
type PrivateTransactionRequest struct {
	SenderKeys       StealthKeys  `json:"sender_keys"`
	RecipientViewKey string       `json:"recipient_view_key"`
	Amount           string       `json:"amount"`
	Fee              string       `json:"fee"`
	PrivacyLevel     PrivacyLevel `json:"privacy_level"`
	Nonce            uint64       `json:"nonce"`
	Memo             string       `json:"memo,omitempty"`
}

// PrivateTransaction is a private transaction as reported by the chain.
type PrivateTransaction struct {
	TxID      string    `json:"tx_id"`
	Amount    string    `json:"amount"`
	Memo      string    `json:"memo,omitempty"`
	Sender    string    `json:"sender,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Fee       string    `json:"fee"`
}

// ValidatorStatus is the closed set of validator states.
type ValidatorStatus string

const (
	ValidatorActive   ValidatorStatus = "active"
	ValidatorInactive ValidatorStatus = "inactive"
	ValidatorJailed   ValidatorStatus = "jailed"
)

// Validator mirrors chain-side validator state. Read-mostly; mutated only by
// the chain and refreshed by re-querying.
type Validator struct {
	Address        string          `json:"address"`
	Name           string          `json:"name"`
	VotingPower    string          `json:"voting_power"`
	Commission     string          `json:"commission"`
	Status         ValidatorStatus `json:"status"`
	TotalDelegated string          `json:"total_delegated"`
	DelegatorCount int             `json:"delegator_count"`
	PublicKey      string          `json:"public_key,omitempty"`
	LastActivity   *time.Time      `json:"last_activity,omitempty"`
}

// DelegationRequest describes a delegation to be submitted.
type DelegationRequest struct {
	ValidatorAddress string `json:"validator_address"`
	Amount           string `json:"amount"`
	Fee              string `json:"fee"`
}

// Delegation is an existing stake assignment to a validator.
type Delegation struct {
	ValidatorAddress string    `json:"validator_address"`
	Amount           string    `json:"amount"`
	Rewards          string    `json:"rewards"`
	Timestamp        time.Time `json:"timestamp"`
}

// StakingRewards is a rewards snapshot for a delegator.
type StakingRewards struct {
	Total     string     `json:"total"`
	Available string     `json:"available"`
	Pending   string     `json:"pending"`
	LastClaim *time.Time `json:"last_claim,omitempty"`
}

// ProposalStatus is the closed set of governance proposal states.
type ProposalStatus string

const (
	ProposalVoting   ProposalStatus = "voting"
	ProposalPassed   ProposalStatus = "passed"
	ProposalRejected ProposalStatus = "rejected"
	ProposalExecuted ProposalStatus = "executed"
	ProposalFailed   ProposalStatus = "failed"
)

// VoteTally aggregates votes on a proposal. Amounts are decimal strings.
type VoteTally struct {
	Yes        string `json:"yes"`
	No         string `json:"no"`
	Abstain    string `json:"abstain"`
	NoWithVeto string `json:"no_with_veto"`
}

// Proposal is a governance proposal as reported by the chain.
type Proposal struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Proposer        string         `json:"proposer"`
	Status          ProposalStatus `json:"status"`
	VotingStartTime time.Time      `json:"voting_start_time"`
	VotingEndTime   time.Time      `json:"voting_end_time"`
	Tally           VoteTally      `json:"tally"`
}

// VoteOption is the closed set of governance vote options.
type VoteOption string

const (
	VoteYes        VoteOption = "yes"
	VoteNo         VoteOption = "no"
	VoteAbstain    VoteOption = "abstain"
	VoteNoWithVeto VoteOption = "no_with_veto"
)

// VoteRequest describes a vote to be cast.
type VoteRequest struct {
	ProposalID string     `json:"proposal_id"`
	Option     VoteOption `json:"option"`
	Fee        string     `json:"fee"`
}

// NetworkStatus is a point-in-time snapshot of network health.
type NetworkStatus struct {
	BlockHeight      uint64    `json:"block_height"`
	NetworkID        string    `json:"network_id"`
	ConsensusVersion string    `json:"consensus_version"`
	PeerCount        int       `json:"peer_count"`
	Syncing          bool      `json:"syncing"`
	LatestBlockTime  time.Time `json:"latest_block_time"`
}

// Block is a chain block header plus an optional transaction list.
type Block struct {
	Height           uint64        `json:"height"`
	Hash             string        `json:"hash"`
	PreviousHash     string        `json:"previous_hash"`
	Timestamp        time.Time     `json:"timestamp"`
	TransactionCount int           `json:"transaction_count"`
	Proposer         string        `json:"proposer"`
	Transactions     []Transaction `json:"transactions,omitempty"`
}

// Fee is a fee estimate returned by the chain.
type Fee struct {
	Amount   string `json:"amount"`
	GasLimit uint64 `json:"gas_limit,omitempty"`
	GasPrice string `json:"gas_price,omitempty"`
}
