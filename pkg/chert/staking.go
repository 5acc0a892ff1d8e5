package chert

import (
	"context"
)

// StakingManager handles validators, delegations and rewards. Calls returning
// an ad hoc {"tx_hash": ...} shape are checked for the expected key; absence
// is a staking error, since the call nominally succeeded but violated its
// contract.
type StakingManager struct {
	client *Client
}

// Validators returns the validator set.
func (m *StakingManager) Validators(ctx context.Context) ([]Validator, error) {
	var validators []Validator
	if err := m.client.CallInto(ctx, "getValidators", nil, &validators); err != nil {
		return nil, err
	}
	return validators, nil
}

// Validator returns a single validator by address.
func (m *StakingManager) Validator(ctx context.Context, address string) (*Validator, error) {
	if address == "" {
		return nil, NewValidationError("address", "address cannot be empty")
	}

	var validator Validator
	if err := m.client.CallInto(ctx, "getValidator", []any{address}, &validator); err != nil {
		return nil, err
	}
	return &validator, nil
}

// Delegate assigns stake to a validator and returns the transaction hash.
func (m *StakingManager) Delegate(ctx context.Context, delegatorAddress, validatorAddress, amount, fee string) (string, error) {
	if delegatorAddress == "" || validatorAddress == "" {
		return "", NewValidationError("address", "delegator and validator addresses are required")
	}
	if err := validateAmounts(amount, fee); err != nil {
		return "", err
	}

	req := DelegationRequest{
		ValidatorAddress: validatorAddress,
		Amount:           amount,
		Fee:              fee,
	}
	return m.txHashCall(ctx, "staking_delegate", req, "invalid delegation response")
}

// Undelegate removes stake from a validator and returns the transaction hash.
func (m *StakingManager) Undelegate(ctx context.Context, delegatorAddress, validatorAddress, amount, fee string) (string, error) {
	if delegatorAddress == "" || validatorAddress == "" {
		return "", NewValidationError("address", "delegator and validator addresses are required")
	}
	if err := validateAmounts(amount, fee); err != nil {
		return "", err
	}

	params := map[string]any{
		"delegator": delegatorAddress,
		"validator": validatorAddress,
		"amount":    amount,
		"fee":       fee,
	}
	return m.txHashCall(ctx, "staking_undelegate", params, "invalid undelegation response")
}

// Delegations returns the delegations held by an account.
func (m *StakingManager) Delegations(ctx context.Context, delegatorAddress string) ([]Delegation, error) {
	if delegatorAddress == "" {
		return nil, NewValidationError("delegator", "delegator address cannot be empty")
	}

	var delegations []Delegation
	if err := m.client.CallInto(ctx, "getDelegations", []any{delegatorAddress}, &delegations); err != nil {
		return nil, err
	}
	return delegations, nil
}

// Rewards returns the staking rewards accrued by an account.
func (m *StakingManager) Rewards(ctx context.Context, delegatorAddress string) (*StakingRewards, error) {
	if delegatorAddress == "" {
		return nil, NewValidationError("delegator", "delegator address cannot be empty")
	}

	var rewards StakingRewards
	if err := m.client.CallInto(ctx, "getStakingRewards", []any{delegatorAddress}, &rewards); err != nil {
		return nil, err
	}
	return &rewards, nil
}

// ClaimRewards claims accrued rewards from a validator and returns the
// transaction hash.
func (m *StakingManager) ClaimRewards(ctx context.Context, delegatorAddress, validatorAddress, fee string) (string, error) {
	if delegatorAddress == "" || validatorAddress == "" {
		return "", NewValidationError("address", "delegator and validator addresses are required")
	}
	if err := validateDecimal("fee", fee); err != nil {
		return "", err
	}

	params := map[string]any{
		"delegator": delegatorAddress,
		"validator": validatorAddress,
		"fee":       fee,
	}
	return m.txHashCall(ctx, "staking_claimRewards", params, "invalid claim rewards response")
}

func (m *StakingManager) txHashCall(ctx context.Context, method string, params any, contractMsg string) (string, error) {
	var result struct {
		TxHash string `json:"tx_hash"`
	}
	if err := m.client.CallInto(ctx, method, []any{params}, &result); err != nil {
		return "", err
	}
	if result.TxHash == "" {
		return "", NewStakingError(contractMsg + ": missing tx_hash")
	}
	return result.TxHash, nil
}
