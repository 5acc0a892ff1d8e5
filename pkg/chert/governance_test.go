package chert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposals(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_getProposals": func(params []any) (any, *rpcError) {
			require.Len(t, params, 1)
			req, ok := params[0].(map[string]any)
			require.True(t, ok)
			assert.EqualValues(t, 5, req["limit"])
			return []Proposal{{ID: "prop-1", Title: "raise the cap", Status: ProposalVoting}}, nil
		},
	}))

	proposals, err := client.Governance.Proposals(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, ProposalVoting, proposals[0].Status)
}

func TestProposalsOmitsNonPositiveLimit(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_getProposals": func(params []any) (any, *rpcError) {
			require.Len(t, params, 1)
			req, ok := params[0].(map[string]any)
			require.True(t, ok)
			assert.NotContains(t, req, "limit")
			return []Proposal{}, nil
		},
	}))

	_, err := client.Governance.Proposals(context.Background(), 0)
	require.NoError(t, err)
}

func TestProposalByID(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_getProposal": func(params []any) (any, *rpcError) {
			require.Len(t, params, 1)
			assert.Equal(t, "prop-1", params[0])
			return Proposal{ID: "prop-1", Status: ProposalPassed}, nil
		},
	}))

	proposal, err := client.Governance.Proposal(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.Equal(t, ProposalPassed, proposal.Status)

	_, err = client.Governance.Proposal(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestCreateProposal(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_createProposal": func(params []any) (any, *rpcError) {
			require.Len(t, params, 1)
			req, ok := params[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "raise the cap", req["title"])
			assert.Equal(t, "chert_me", req["proposer"])
			return map[string]string{"proposal_id": "prop-9"}, nil
		},
	}))

	id, err := client.Governance.CreateProposal(context.Background(), "raise the cap", "long text", "chert_me", "1")
	require.NoError(t, err)
	assert.Equal(t, "prop-9", id)
}

func TestCreateProposalValidation(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, nil))

	_, err := client.Governance.CreateProposal(context.Background(), "", "desc", "chert_me", "1")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))

	_, err = client.Governance.CreateProposal(context.Background(), "title", "", "chert_me", "1")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))

	_, err = client.Governance.CreateProposal(context.Background(), "title", "desc", "chert_me", "free")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestCreateProposalRequiresID(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_createProposal": func([]any) (any, *rpcError) {
			return map[string]string{}, nil
		},
	}))

	_, err := client.Governance.CreateProposal(context.Background(), "title", "desc", "chert_me", "1")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindGovernance))
}

func TestVote(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_vote": func(params []any) (any, *rpcError) {
			require.Len(t, params, 1)
			req, ok := params[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "prop-1", req["proposal_id"])
			assert.Equal(t, string(VoteNoWithVeto), req["option"])
			return map[string]string{"tx_hash": "0xvote"}, nil
		},
	}))

	hash, err := client.Governance.Vote(context.Background(), "prop-1", "chert_me", VoteNoWithVeto, "0.1")
	require.NoError(t, err)
	assert.Equal(t, "0xvote", hash)

	_, err = client.Governance.Vote(context.Background(), "", "chert_me", VoteYes, "0.1")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestProposalVotes(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_getProposalVotes": func([]any) (any, *rpcError) {
			return VoteTally{Yes: "100", No: "20", Abstain: "5", NoWithVeto: "1"}, nil
		},
	}))

	tally, err := client.Governance.ProposalVotes(context.Background(), "prop-1")
	require.NoError(t, err)
	assert.Equal(t, "100", tally.Yes)
	assert.Equal(t, "1", tally.NoWithVeto)
}

func TestVoterVotes(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_getVoterVotes": func(params []any) (any, *rpcError) {
			require.Len(t, params, 1)
			assert.Equal(t, "chert_me", params[0])
			return map[string]VoteOption{"prop-1": VoteYes, "prop-2": VoteAbstain}, nil
		},
	}))

	votes, err := client.Governance.VoterVotes(context.Background(), "chert_me")
	require.NoError(t, err)
	assert.Equal(t, VoteYes, votes["prop-1"])
	assert.Equal(t, VoteAbstain, votes["prop-2"])
}

func TestExecuteProposal(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_executeProposal": func(params []any) (any, *rpcError) {
			require.Len(t, params, 1)
			req, ok := params[0].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "prop-1", req["proposal_id"])
			return map[string]string{"tx_hash": "0xexec"}, nil
		},
	}))

	hash, err := client.Governance.ExecuteProposal(context.Background(), "prop-1", "chert_me", "0.1")
	require.NoError(t, err)
	assert.Equal(t, "0xexec", hash)
}

func TestExecuteProposalRequiresTxHash(t *testing.T) {
	client, _ := newTestClient(t, rpcHandler(t, map[string]func([]any) (any, *rpcError){
		"governance_executeProposal": func([]any) (any, *rpcError) {
			return map[string]string{}, nil
		},
	}))

	_, err := client.Governance.ExecuteProposal(context.Background(), "prop-1", "chert_me", "0.1")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindGovernance))
}
