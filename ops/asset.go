package ops

import "github.com/weyoume/wenode-sub002/objects"

// AssetCreate registers a new asset, implicitly seeding its core liquidity
// pool and satellite credit pool.
type AssetCreate struct {
	Issuer           string            `wire:"0"`
	Symbol           string            `wire:"1"`
	AssetKind        objects.AssetKind `wire:"2"`
	MaxSupply        objects.Amount    `wire:"3"`
	Precision        uint8             `wire:"4"`
	StakeIntervals   uint32            `wire:"5"`
	UnstakeIntervals uint32            `wire:"6"`
	MarketFeePercent uint16            `wire:"7"`
	Permissions      uint32            `wire:"8"`
	Flags            uint32            `wire:"9"`
	BackingAsset     string            `wire:"10"` // bitassets only
}

func (o AssetCreate) Kind() Kind           { return KindAssetCreate }
func (o AssetCreate) ActorAccount() string { return o.Issuer }

// AssetUpdate edits an existing asset's mutable fields.
type AssetUpdate struct {
	Issuer      string `wire:"0"`
	Symbol      string `wire:"1"`
	NewFlags    uint32 `wire:"2"`
	MarketFeePercent uint16 `wire:"3"`
}

func (o AssetUpdate) Kind() Kind           { return KindAssetUpdate }
func (o AssetUpdate) ActorAccount() string { return o.Issuer }

// AssetIssue mints new supply into an account's liquid balance (issuer-only
// assets).
type AssetIssue struct {
	Issuer string         `wire:"0"`
	Symbol string         `wire:"1"`
	To     string         `wire:"2"`
	Amount objects.Amount `wire:"3"`
}

func (o AssetIssue) Kind() Kind           { return KindAssetIssue }
func (o AssetIssue) ActorAccount() string { return o.Issuer }

// AssetReserve burns supply from the caller's own liquid balance.
type AssetReserve struct {
	Account string         `wire:"0"`
	Symbol  string         `wire:"1"`
	Amount  objects.Amount `wire:"2"`
}

func (o AssetReserve) Kind() Kind           { return KindAssetReserve }
func (o AssetReserve) ActorAccount() string { return o.Account }

// UpdateFeedProducers replaces a bitasset's authorized feed-publisher set.
type UpdateFeedProducers struct {
	Issuer    string   `wire:"0"`
	Symbol    string   `wire:"1"`
	Producers []string `wire:"2"`
}

func (o UpdateFeedProducers) Kind() Kind           { return KindUpdateFeedProducers }
func (o UpdateFeedProducers) ActorAccount() string { return o.Issuer }

// PublishFeed submits one producer's price observation for a bitasset.
type PublishFeed struct {
	Publisher string        `wire:"0"`
	Symbol    string        `wire:"1"`
	Price     objects.Price `wire:"2"`
}

func (o PublishFeed) Kind() Kind           { return KindPublishFeed }
func (o PublishFeed) ActorAccount() string { return o.Publisher }

// Settle queues a forced settlement of the caller's bitasset holdings at
// the current feed price.
type Settle struct {
	Account string         `wire:"0"`
	Symbol  string         `wire:"1"`
	Amount  objects.Amount `wire:"2"`
}

func (o Settle) Kind() Kind           { return KindSettle }
func (o Settle) ActorAccount() string { return o.Account }

// GlobalSettle force-settles every outstanding debt position of a bitasset
// at once; restricted to the asset's issuer or triggered by maintenance
// when no call order can be matched above MCR.
type GlobalSettle struct {
	Issuer string `wire:"0"`
	Symbol string `wire:"1"`
}

func (o GlobalSettle) Kind() Kind           { return KindGlobalSettle }
func (o GlobalSettle) ActorAccount() string { return o.Issuer }

// CollateralBid offers collateral toward reviving a globally-settled
// bitasset.
type CollateralBid struct {
	Bidder     string         `wire:"0"`
	Symbol     string         `wire:"1"`
	Collateral objects.Amount `wire:"2"`
	Debt       objects.Amount `wire:"3"`
}

func (o CollateralBid) Kind() Kind           { return KindCollateralBid }
func (o CollateralBid) ActorAccount() string { return o.Bidder }
