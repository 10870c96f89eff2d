package ops

import "github.com/weyoume/wenode-sub002/objects"

// EscrowTransfer opens a new escrow.
type EscrowTransfer struct {
	From       string         `wire:"0"`
	To         string         `wire:"1"`
	Agent      string         `wire:"2"`
	ID         uint64         `wire:"3"`
	Symbol     string         `wire:"4"`
	Amount     objects.Amount `wire:"5"`
	Fee        objects.Amount `wire:"6"`
	Expiration int64          `wire:"7"`
}

func (o EscrowTransfer) Kind() Kind           { return KindEscrowTransfer }
func (o EscrowTransfer) ActorAccount() string { return o.From }

// EscrowApprove records one party's approval toward the threshold needed to
// release funds.
type EscrowApprove struct {
	From    string `wire:"0"`
	ID      uint64 `wire:"1"`
	Who     string `wire:"2"`
	Approve bool   `wire:"3"`
}

func (o EscrowApprove) Kind() Kind           { return KindEscrowApprove }
func (o EscrowApprove) ActorAccount() string { return o.Who }

// EscrowDispute flags an escrow as disputed, freezing automatic release
// until the agent resolves it.
type EscrowDispute struct {
	From string `wire:"0"`
	ID   uint64 `wire:"1"`
	Who  string `wire:"2"`
}

func (o EscrowDispute) Kind() Kind           { return KindEscrowDispute }
func (o EscrowDispute) ActorAccount() string { return o.Who }

// EscrowRelease pays out escrowed funds to Receiver once approvals (or the
// agent, if disputed) authorize it.
type EscrowRelease struct {
	From     string         `wire:"0"`
	ID       uint64         `wire:"1"`
	Who      string         `wire:"2"`
	Receiver string         `wire:"3"`
	Amount   objects.Amount `wire:"4"`
}

func (o EscrowRelease) Kind() Kind           { return KindEscrowRelease }
func (o EscrowRelease) ActorAccount() string { return o.Who }
