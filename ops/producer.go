package ops

import "github.com/weyoume/wenode-sub002/objects"

// ProducerUpdate edits a producer's signing key and props vote.
type ProducerUpdate struct {
	Account    string                  `wire:"0"`
	SigningKey [33]byte                `wire:"1"`
	PropsVote  objects.ChainProperties `wire:"2"`
}

func (o ProducerUpdate) Kind() Kind           { return KindProducerUpdate }
func (o ProducerUpdate) ActorAccount() string { return o.Account }

// ProofOfWork submits a mining solution for an existing account; creates
// the account's producer record if absent.
type ProofOfWork struct {
	Account    string   `wire:"0"`
	Nonce      uint64   `wire:"1"`
	Hash       [32]byte `wire:"2"`
	SigningKey [33]byte `wire:"3"`
}

func (o ProofOfWork) Kind() Kind           { return KindProofOfWork }
func (o ProofOfWork) ActorAccount() string { return o.Account }

// VerifyBlock publishes one producer's verification of a recent block id.
type VerifyBlock struct {
	Producer string   `wire:"0"`
	Height   uint64   `wire:"1"`
	BlockID  [32]byte `wire:"2"`
}

func (o VerifyBlock) Kind() Kind           { return KindVerifyBlock }
func (o VerifyBlock) ActorAccount() string { return o.Producer }

// CommitBlock is a stronger form of VerifyBlock counted toward
// irreversibility.
type CommitBlock struct {
	Producer string   `wire:"0"`
	Height   uint64   `wire:"1"`
	BlockID  [32]byte `wire:"2"`
}

func (o CommitBlock) Kind() Kind           { return KindCommitBlock }
func (o CommitBlock) ActorAccount() string { return o.Producer }

// ProducerViolation submits evidence of equivocation by a producer.
type ProducerViolation struct {
	Reporter  string   `wire:"0"`
	Producer  string   `wire:"1"`
	Height    uint64   `wire:"2"`
	DigestOne [32]byte `wire:"3"`
	DigestTwo [32]byte `wire:"4"`
}

func (o ProducerViolation) Kind() Kind           { return KindProducerViolation }
func (o ProducerViolation) ActorAccount() string { return o.Reporter }

// Custom carries an opaque plugin-dispatched payload; the kernel validates
// nothing about Data beyond a size bound and never interprets it.
type Custom struct {
	Account string `wire:"0"`
	ID      uint16 `wire:"1"`
	Data    []byte `wire:"2"`
}

func (o Custom) Kind() Kind           { return KindCustom }
func (o Custom) ActorAccount() string { return o.Account }

// CustomJSON is Custom's JSON-payload sibling, dispatched to an external
// interpreter plugin that this kernel does not implement.
type CustomJSON struct {
	Signers []string `wire:"0"`
	ID      string   `wire:"1"`
	JSON    []byte   `wire:"2"`
}

func (o CustomJSON) Kind() Kind { return KindCustomJSON }
