package objects

import "github.com/weyoume/wenode-sub002/store"

// AssetKind tags which variant of Asset a record holds.
type AssetKind int

const (
	AssetCurrency AssetKind = iota
	AssetStandard
	AssetEquity
	AssetCredit
	AssetBitasset
	AssetLiquidityPool
	AssetCreditPool
	AssetOption
	AssetPrediction
	AssetGateway
	AssetUnique
	AssetStimulus
	AssetDistribution
)

// Permission bits, a subset of which form an asset's current Flags.
const (
	PermWhitelist uint32 = 1 << iota
	PermTransferRestricted
	PermDisableForceSettle
	PermGlobalSettle
	PermDisableConfidential
	PermCommitteeFedAsset
	PermWitnessFedAsset
)

// Asset is the kernel's per-symbol asset record.
type Asset struct {
	store.Base

	Symbol string
	Kind   AssetKind
	Issuer string // empty for currency assets

	MaxSupply        Amount
	Precision        uint8 // decimal places; consensus constant is 8
	StakeIntervals   uint32
	UnstakeIntervals uint32
	MarketFeePercent uint16 // basis points
	Permissions      uint32
	Flags            uint32

	Bitasset *BitassetData
	Equity   *EquityData
	Credit   *CreditData

	Dynamic AssetDynamicData
}

func (a *Asset) ObjectIDKey() string { return a.Symbol }

// AssetDynamicData holds the eight supply accumulators plus fee tracking.
// Invariant:
// Total == Liquid+Staked+Reward+Savings+Pending+Confidential at all times.
type AssetDynamicData struct {
	AccumulatedFees Amount
	FeePool         Amount // denominated in the core asset

	Total        Amount
	Liquid       Amount
	Staked       Amount
	Reward       Amount
	Savings      Amount
	Delegated    Amount // subset of Staked, not separately summed into Total
	Receiving    Amount
	Pending      Amount
	Confidential Amount
}

// BitassetData is an asset's bitasset-specific sub-record.
type BitassetData struct {
	Feed                  map[string]PriceFeed // publisher -> feed
	CurrentFeed           PriceFeed
	BackingAsset          string
	SettlementPrice       Price
	SettlementFund        Amount
	MaintenanceCollateral uint32 // basis points, MCR
	FeedProducers         map[string]bool
	GloballySettled       bool
	ForceSettleDelaySec   int64
}

// PriceFeed is one producer's price observation plus the timestamp it was
// published, used for the feed-map median.
type PriceFeed struct {
	Published int64
	Price     Price
}

// Price is a ratio base:quote, e.g. 1 BITUSD = Price{Base:1, Quote:2_5} in
// COIN terms; always expressed base-asset-per-quote-asset.
type Price struct {
	BaseAmount  uint64
	QuoteAmount uint64
}

// EquityData is an equity asset's revenue-share sub-record.
type EquityData struct {
	DividendAsset string
	DividendPool  Amount
	RevenueShare  uint16 // basis points
}

// CreditData is a credit asset's revenue-share sub-record.
type CreditData struct {
	BuybackAsset string
	BuybackPool  Amount
}
