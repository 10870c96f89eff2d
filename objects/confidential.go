package objects

import (
	"github.com/weyoume/wenode-sub002/confidential"
	"github.com/weyoume/wenode-sub002/store"
)

// ConfidentialBalance is a per-account, per-asset Pedersen commitment
// backing the asset's `confidential` supply accumulator.
type ConfidentialBalance struct {
	store.Base

	Owner      string
	Symbol     string
	Commitment confidential.Commitment
}

func (c *ConfidentialBalance) OwnerSymbolKey() (string, string) { return c.Owner, c.Symbol }
