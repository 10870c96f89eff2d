// Package kernelerr declares the kernel's closed error taxonomy.
//
// Every evaluator and subsystem failure wraps one of these sentinels with
// fmt.Errorf("%w: ...", Err...) so callers use errors.Is, never string
// matching, to classify a failure.
package kernelerr

import "errors"

var (
	// ErrNotFound: referenced account/asset/pool/order doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized: signatures insufficient, signatory lacks permission,
	// declined voting, not on feed-producer list.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPrecondition: balances insufficient, pool reserves insufficient,
	// rate limit, locked, wrong asset type for operation.
	ErrPrecondition = errors.New("precondition violated")

	// ErrInvariant: numeric overflow, negative supply, malformed authority,
	// self-reference where forbidden, proxy loop.
	ErrInvariant = errors.New("invariant violated")

	// ErrExpired: tx/order/request past its expiration at evaluation time.
	ErrExpired = errors.New("expired")

	// ErrConsensus: producer violation, verification from wrong producer,
	// PoW below difficulty, block out-of-slot.
	ErrConsensus = errors.New("consensus error")
)
