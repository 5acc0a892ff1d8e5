package chert

import (
	"context"
)

// GovernanceManager handles proposals and voting. Calls returning ad hoc
// shapes ({"proposal_id": ...}, {"tx_hash": ...}) are checked for the
// expected key; absence is a governance error.
type GovernanceManager struct {
	client *Client
}

// Proposals returns governance proposals, newest first. A positive limit
// bounds the result size; zero or negative means the server default.
func (m *GovernanceManager) Proposals(ctx context.Context, limit int) ([]Proposal, error) {
	params := map[string]any{}
	if limit > 0 {
		params["limit"] = limit
	}

	var proposals []Proposal
	if err := m.client.CallInto(ctx, "governance_getProposals", []any{params}, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// Proposal returns a single proposal by ID.
func (m *GovernanceManager) Proposal(ctx context.Context, proposalID string) (*Proposal, error) {
	if proposalID == "" {
		return nil, NewValidationError("proposal_id", "proposal ID cannot be empty")
	}

	var proposal Proposal
	if err := m.client.CallInto(ctx, "governance_getProposal", []any{proposalID}, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// CreateProposal submits a new governance proposal and returns its ID.
func (m *GovernanceManager) CreateProposal(ctx context.Context, title, description, proposerAddress, fee string) (string, error) {
	if title == "" || description == "" {
		return "", NewValidationError("proposal", "title and description are required")
	}
	if err := validateDecimal("fee", fee); err != nil {
		return "", err
	}

	params := map[string]any{
		"title":       title,
		"description": description,
		"proposer":    proposerAddress,
		"fee":         fee,
	}

	var result struct {
		ProposalID string `json:"proposal_id"`
	}
	if err := m.client.CallInto(ctx, "governance_createProposal", []any{params}, &result); err != nil {
		return "", err
	}
	if result.ProposalID == "" {
		return "", NewGovernanceError("invalid proposal creation response: missing proposal_id")
	}
	return result.ProposalID, nil
}

// Vote casts a vote on a proposal and returns the transaction hash.
func (m *GovernanceManager) Vote(ctx context.Context, proposalID, voterAddress string, option VoteOption, fee string) (string, error) {
	if proposalID == "" {
		return "", NewValidationError("proposal_id", "proposal ID cannot be empty")
	}
	if voterAddress == "" {
		return "", NewValidationError("voter", "voter address cannot be empty")
	}
	if err := validateDecimal("fee", fee); err != nil {
		return "", err
	}

	req := VoteRequest{
		ProposalID: proposalID,
		Option:     option,
		Fee:        fee,
	}
	return m.txHashCall(ctx, "governance_vote", req, "invalid vote response")
}

// ProposalVotes returns the vote tally for a proposal.
func (m *GovernanceManager) ProposalVotes(ctx context.Context, proposalID string) (*VoteTally, error) {
	if proposalID == "" {
		return nil, NewValidationError("proposal_id", "proposal ID cannot be empty")
	}

	var tally VoteTally
	if err := m.client.CallInto(ctx, "governance_getProposalVotes", []any{proposalID}, &tally); err != nil {
		return nil, err
	}
	return &tally, nil
}

// VoterVotes returns the votes cast by a voter, keyed by proposal ID.
func (m *GovernanceManager) VoterVotes(ctx context.Context, voterAddress string) (map[string]VoteOption, error) {
	if voterAddress == "" {
		return nil, NewValidationError("voter", "voter address cannot be empty")
	}

	var votes map[string]VoteOption
	if err := m.client.CallInto(ctx, "governance_getVoterVotes", []any{voterAddress}, &votes); err != nil {
		return nil, err
	}
	return votes, nil
}

// ExecuteProposal executes a passed proposal and returns the transaction hash.
func (m *GovernanceManager) ExecuteProposal(ctx context.Context, proposalID, executorAddress, fee string) (string, error) {
	if proposalID == "" {
		return "", NewValidationError("proposal_id", "proposal ID cannot be empty")
	}
	if err := validateDecimal("fee", fee); err != nil {
		return "", err
	}

	params := map[string]any{
		"proposal_id": proposalID,
		"executor":    executorAddress,
		"fee":         fee,
	}
	return m.txHashCall(ctx, "governance_executeProposal", params, "invalid proposal execution response")
}

func (m *GovernanceManager) txHashCall(ctx context.Context, method string, params any, contractMsg string) (string, error) {
	var result struct {
		TxHash string `json:"tx_hash"`
	}
	if err := m.client.CallInto(ctx, method, []any{params}, &result); err != nil {
		return "", err
	}
	if result.TxHash == "" {
		return "", NewGovernanceError(contractMsg + ": missing tx_hash")
	}
	return result.TxHash, nil
}
