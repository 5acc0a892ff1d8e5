// Package chert is the client SDK for the Chert blockchain network.
//
// The Client is the single point of contact with a node. It owns one
// long-lived HTTP session and exposes two call shapes: generic HTTP
// requests against an API envelope and JSON-RPC 2.0 calls against the
// configured endpoint. Every failure a caller sees is a *chert.Error with
// a stable machine-readable code; raw transport or decoding errors never
// escape the transport.
//
// Domain operations are grouped into stateless managers bound to the
// client: Wallet (accounts, balances, transactions), Privacy (stealth
// addresses, private transactions), Staking (validators, delegations,
// rewards), and Governance (proposals, voting).
//
// Basic usage:
//
//	client, err := chert.NewClient(chert.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	account, err := client.Wallet.CreateAccount()
//	if err != nil {
//		return err
//	}
//
//	balance, err := client.Wallet.Balance(ctx, account.Address)
//	if chert.IsKind(err, chert.KindNetwork) {
//		// node unreachable; retry later
//	}
//
// Amounts and fees are decimal strings at every boundary. Domain values
// returned by the client are immutable snapshots: a fresh fetch always
// produces a fresh value, nothing is cached or mutated in place.
package chert
