// Package kernel ties every subsystem together into the top-level
// deterministic state machine: the typed object store instantiated with
// its declared indexes, the operation dispatcher, and
// ApplyTransaction/ApplyBlock/PopBlock.
package kernel

import (
	"github.com/weyoume/wenode-sub002/authority"
	"github.com/weyoume/wenode-sub002/balance"
	"github.com/weyoume/wenode-sub002/market"
	"github.com/weyoume/wenode-sub002/objects"
	"github.com/weyoume/wenode-sub002/producer"
	"github.com/weyoume/wenode-sub002/store"
)

// OwnerID is the composite (owner, numeric id) secondary-index key shared
// by every order/loan/escrow/withdraw record kind: no two orders share
// (owner, order-id).
type OwnerID struct {
	Owner string
	ID    uint64
}

// Pair is the composite (symbol_a, symbol_b) secondary-index key shared by
// liquidity/option pools.
type Pair struct{ A, B string }

// TripleKey is the composite key used by asset delegations
// (delegator, delegatee, symbol).
type TripleKey struct{ A, B, C string }

// Chain is the kernel's top-level state: every table plus every declared
// secondary index, instantiated once at genesis and threaded explicitly
// into every evaluator. No thread-locals or implicit context.
type Chain struct {
	ChainID []byte
	Now     int64
	Head    uint64

	Accounts       *store.Table[objects.Account]
	AccountsByName *store.UniqueIndex[objects.Account, string]

	Assets       *store.Table[objects.Asset]
	AssetsBySymbol *store.UniqueIndex[objects.Asset, string]

	Bal balance.Tables

	LimitOrders       *store.Table[objects.LimitOrder]
	LimitByOwnerID    *store.UniqueIndex[objects.LimitOrder, OwnerID]
	LimitBook         *store.OrderedIndex[objects.LimitOrder, market.BookKey]
	LimitByExpiration *store.OrderedIndex[objects.LimitOrder, int64]

	MarginOrders    *store.Table[objects.MarginOrder]
	MarginByOwnerID *store.UniqueIndex[objects.MarginOrder, OwnerID]
	MarginOrdered   *store.OrderedIndex[objects.MarginOrder, OwnerID]

	CallOrders        *store.Table[objects.CallOrder]
	CallByBorrowerDebt *store.UniqueIndex[objects.CallOrder, TripleKey] // C unused, kept empty
	CallByDebtSymbol  *store.OrderedIndex[objects.CallOrder, string]

	AuctionOrders      *store.Table[objects.AuctionOrder]
	AuctionByPair      *store.OrderedIndex[objects.AuctionOrder, Pair]
	AuctionByExpiration *store.OrderedIndex[objects.AuctionOrder, int64]

	OptionOrders    *store.Table[objects.OptionOrder]
	OptionByOwnerID *store.UniqueIndex[objects.OptionOrder, OwnerID]

	LiquidityPools *store.Table[objects.LiquidityPool]
	PoolByPair     *store.UniqueIndex[objects.LiquidityPool, Pair]
	PoolByLPSymbol *store.UniqueIndex[objects.LiquidityPool, string]

	CreditPools      *store.Table[objects.CreditPool]
	CreditByBase     *store.UniqueIndex[objects.CreditPool, string]

	OptionPools   *store.Table[objects.OptionPool]
	OptionPoolByPair *store.UniqueIndex[objects.OptionPool, Pair]

	PredictionPools *store.Table[objects.PredictionPool]
	PredictionBySymbol *store.UniqueIndex[objects.PredictionPool, string]
	PredictionOrdered  *store.OrderedIndex[objects.PredictionPool, string]

	CreditCollaterals *store.Table[objects.CreditCollateral]
	CollateralByOwnerSymbol *store.UniqueIndex[objects.CreditCollateral, TripleKey]

	CreditLoans    *store.Table[objects.CreditLoan]
	LoanByOwnerID  *store.UniqueIndex[objects.CreditLoan, OwnerID]
	LoanOrdered    *store.OrderedIndex[objects.CreditLoan, OwnerID]

	Comments         *store.Table[objects.Comment]
	CommentByAuthorPermlink *store.UniqueIndex[objects.Comment, TripleKey]
	CommentByCashout *store.OrderedIndex[objects.Comment, int64]

	Producers      *store.Table[objects.Producer]
	ProducerByAccount *store.UniqueIndex[objects.Producer, string]

	Schedules *store.Table[objects.ProducerSchedule]

	Escrows       *store.Table[objects.Escrow]
	EscrowByFromID *store.UniqueIndex[objects.Escrow, OwnerID]
	EscrowByExpiration *store.OrderedIndex[objects.Escrow, int64]

	RecoveryRequests *store.Table[objects.RecoveryRequest]
	RecoveryByAccount *store.UniqueIndex[objects.RecoveryRequest, string]

	SavingsWithdraws *store.Table[objects.SavingsWithdraw]
	SavingsByFromID  *store.UniqueIndex[objects.SavingsWithdraw, OwnerID]
	SavingsByComplete *store.OrderedIndex[objects.SavingsWithdraw, int64]

	Delegations      *store.Table[objects.AssetDelegation]
	DelegationByTriple *store.UniqueIndex[objects.AssetDelegation, TripleKey]
	DelegationByEffective *store.OrderedIndex[objects.AssetDelegation, int64]

	ConfidentialBalances *store.Table[objects.ConfidentialBalance]
	ConfidentialByOwnerSymbol *store.UniqueIndex[objects.ConfidentialBalance, TripleKey]

	ForcedSettlements      *store.Table[objects.ForcedSettlementRequest]
	ForcedSettlementByTime *store.OrderedIndex[objects.ForcedSettlementRequest, int64]

	CollateralBids       *store.Table[objects.CollateralBidRecord]
	CollateralBidBySymbol *store.OrderedIndex[objects.CollateralBidRecord, string]

	Verifications *producer.VerificationTracker

	nextLimitOrderSeq uint64
}

// New builds an empty chain with every table and declared secondary index
// wired up: each declares a record type, key extractors, uniqueness, and
// its insert/erase/lookup/range surface.
func New(chainID []byte) *Chain {
	c := &Chain{ChainID: chainID, Verifications: producer.NewVerificationTracker()}

	c.Accounts = store.NewTable[objects.Account]()
	c.AccountsByName = store.NewUniqueIndex(func(a *objects.Account) string { return a.Name })
	c.Accounts.AddIndex(c.AccountsByName)

	c.Assets = store.NewTable[objects.Asset]()
	c.AssetsBySymbol = store.NewUniqueIndex(func(a *objects.Asset) string { return a.Symbol })
	c.Assets.AddIndex(c.AssetsBySymbol)

	c.Bal.Balances = store.NewTable[objects.Balance]()
	c.Bal.ByAccountSymbol = store.NewUniqueIndex(func(b *objects.Balance) [2]string {
		acc, sym := b.AccountSymbolKey()
		return [2]string{acc, sym}
	})
	c.Bal.Balances.AddIndex(c.Bal.ByAccountSymbol)
	c.Bal.Assets = c.Assets
	c.Bal.AssetBySymbol = c.AssetsBySymbol

	c.LimitOrders = store.NewTable[objects.LimitOrder]()
	c.LimitByOwnerID = store.NewUniqueIndex(func(o *objects.LimitOrder) OwnerID { return OwnerID{o.Owner, o.OrderID} })
	c.LimitBook = store.NewOrderedIndex(market.LimitOrderKey, market.LimitOrderLess)
	c.LimitByExpiration = store.NewOrderedIndex(func(o *objects.LimitOrder) int64 { return o.Expiration },
		func(a, b int64) bool { return a < b })
	c.LimitOrders.AddIndex(c.LimitByOwnerID)
	c.LimitOrders.AddIndex(c.LimitBook)
	c.LimitOrders.AddIndex(c.LimitByExpiration)

	c.MarginOrders = store.NewTable[objects.MarginOrder]()
	c.MarginByOwnerID = store.NewUniqueIndex(func(o *objects.MarginOrder) OwnerID { return OwnerID{o.Owner, o.OrderID} })
	c.MarginOrdered = store.NewOrderedIndex(func(o *objects.MarginOrder) OwnerID { return OwnerID{o.Owner, o.OrderID} }, ownerIDLess)
	c.MarginOrders.AddIndex(c.MarginByOwnerID)
	c.MarginOrders.AddIndex(c.MarginOrdered)

	c.CallOrders = store.NewTable[objects.CallOrder]()
	c.CallByBorrowerDebt = store.NewUniqueIndex(func(o *objects.CallOrder) TripleKey {
		return TripleKey{o.Borrower, o.DebtSymbol, ""}
	})
	c.CallByDebtSymbol = store.NewOrderedIndex(func(o *objects.CallOrder) string { return o.DebtSymbol },
		func(a, b string) bool { return a < b })
	c.CallOrders.AddIndex(c.CallByBorrowerDebt)
	c.CallOrders.AddIndex(c.CallByDebtSymbol)

	c.AuctionOrders = store.NewTable[objects.AuctionOrder]()
	c.AuctionByPair = store.NewOrderedIndex(func(o *objects.AuctionOrder) Pair { return Pair{o.SellSymbol, o.ReceiveSymbol} },
		pairLess)
	c.AuctionByExpiration = store.NewOrderedIndex(func(o *objects.AuctionOrder) int64 { return o.Expiration },
		func(a, b int64) bool { return a < b })
	c.AuctionOrders.AddIndex(c.AuctionByPair)
	c.AuctionOrders.AddIndex(c.AuctionByExpiration)

	c.OptionOrders = store.NewTable[objects.OptionOrder]()
	c.OptionByOwnerID = store.NewUniqueIndex(func(o *objects.OptionOrder) OwnerID { return OwnerID{o.Owner, o.ID} })
	c.OptionOrders.AddIndex(c.OptionByOwnerID)

	c.LiquidityPools = store.NewTable[objects.LiquidityPool]()
	c.PoolByPair = store.NewUniqueIndex(func(p *objects.LiquidityPool) Pair { a, b := p.PairKey(); return Pair{a, b} })
	c.PoolByLPSymbol = store.NewUniqueIndex(func(p *objects.LiquidityPool) string { return p.LPSymbol })
	c.LiquidityPools.AddIndex(c.PoolByPair)
	c.LiquidityPools.AddIndex(c.PoolByLPSymbol)

	c.CreditPools = store.NewTable[objects.CreditPool]()
	c.CreditByBase = store.NewUniqueIndex(func(p *objects.CreditPool) string { return p.BaseSymbol })
	c.CreditPools.AddIndex(c.CreditByBase)

	c.OptionPools = store.NewTable[objects.OptionPool]()
	c.OptionPoolByPair = store.NewUniqueIndex(func(p *objects.OptionPool) Pair { return Pair{p.BaseSymbol, p.QuoteSymbol} })
	c.OptionPools.AddIndex(c.OptionPoolByPair)

	c.PredictionPools = store.NewTable[objects.PredictionPool]()
	c.PredictionBySymbol = store.NewUniqueIndex(func(p *objects.PredictionPool) string { return p.PredictionSymbol })
	c.PredictionOrdered = store.NewOrderedIndex(func(p *objects.PredictionPool) string { return p.PredictionSymbol },
		func(a, b string) bool { return a < b })
	c.PredictionPools.AddIndex(c.PredictionBySymbol)
	c.PredictionPools.AddIndex(c.PredictionOrdered)

	c.CreditCollaterals = store.NewTable[objects.CreditCollateral]()
	c.CollateralByOwnerSymbol = store.NewUniqueIndex(func(r *objects.CreditCollateral) TripleKey {
		o, s := r.OwnerSymbolKey()
		return TripleKey{o, s, ""}
	})
	c.CreditCollaterals.AddIndex(c.CollateralByOwnerSymbol)

	c.CreditLoans = store.NewTable[objects.CreditLoan]()
	c.LoanByOwnerID = store.NewUniqueIndex(func(l *objects.CreditLoan) OwnerID { return OwnerID{l.Owner, l.LoanID} })
	c.LoanOrdered = store.NewOrderedIndex(func(l *objects.CreditLoan) OwnerID { return OwnerID{l.Owner, l.LoanID} }, ownerIDLess)
	c.CreditLoans.AddIndex(c.LoanByOwnerID)
	c.CreditLoans.AddIndex(c.LoanOrdered)

	c.Comments = store.NewTable[objects.Comment]()
	c.CommentByAuthorPermlink = store.NewUniqueIndex(func(cm *objects.Comment) TripleKey {
		a, p := cm.AuthorPermlinkKey()
		return TripleKey{a, p, ""}
	})
	c.CommentByCashout = store.NewOrderedIndex(func(cm *objects.Comment) int64 { return cm.CashoutTime },
		func(a, b int64) bool { return a < b })
	c.Comments.AddIndex(c.CommentByAuthorPermlink)
	c.Comments.AddIndex(c.CommentByCashout)

	c.Producers = store.NewTable[objects.Producer]()
	c.ProducerByAccount = store.NewUniqueIndex(func(p *objects.Producer) string { return p.Account })
	c.Producers.AddIndex(c.ProducerByAccount)

	c.Schedules = store.NewTable[objects.ProducerSchedule]()

	c.Escrows = store.NewTable[objects.Escrow]()
	c.EscrowByFromID = store.NewUniqueIndex(func(e *objects.Escrow) OwnerID { return OwnerID{e.From, e.ID} })
	c.EscrowByExpiration = store.NewOrderedIndex(func(e *objects.Escrow) int64 { return e.Expiration },
		func(a, b int64) bool { return a < b })
	c.Escrows.AddIndex(c.EscrowByFromID)
	c.Escrows.AddIndex(c.EscrowByExpiration)

	c.RecoveryRequests = store.NewTable[objects.RecoveryRequest]()
	c.RecoveryByAccount = store.NewUniqueIndex(func(r *objects.RecoveryRequest) string { return r.Account })
	c.RecoveryRequests.AddIndex(c.RecoveryByAccount)

	c.SavingsWithdraws = store.NewTable[objects.SavingsWithdraw]()
	c.SavingsByFromID = store.NewUniqueIndex(func(w *objects.SavingsWithdraw) OwnerID { return OwnerID{w.From, w.RequestID} })
	c.SavingsByComplete = store.NewOrderedIndex(func(w *objects.SavingsWithdraw) int64 { return w.Complete },
		func(a, b int64) bool { return a < b })
	c.SavingsWithdraws.AddIndex(c.SavingsByFromID)
	c.SavingsWithdraws.AddIndex(c.SavingsByComplete)

	c.Delegations = store.NewTable[objects.AssetDelegation]()
	c.DelegationByTriple = store.NewUniqueIndex(func(d *objects.AssetDelegation) TripleKey {
		return TripleKey{d.Delegator, d.Delegatee, d.Symbol}
	})
	c.DelegationByEffective = store.NewOrderedIndex(func(d *objects.AssetDelegation) int64 { return d.EffectiveOn },
		func(a, b int64) bool { return a < b })
	c.Delegations.AddIndex(c.DelegationByTriple)
	c.Delegations.AddIndex(c.DelegationByEffective)

	c.ConfidentialBalances = store.NewTable[objects.ConfidentialBalance]()
	c.ConfidentialByOwnerSymbol = store.NewUniqueIndex(func(b *objects.ConfidentialBalance) TripleKey {
		o, s := b.OwnerSymbolKey()
		return TripleKey{o, s, ""}
	})
	c.ConfidentialBalances.AddIndex(c.ConfidentialByOwnerSymbol)

	c.ForcedSettlements = store.NewTable[objects.ForcedSettlementRequest]()
	c.ForcedSettlementByTime = store.NewOrderedIndex(func(r *objects.ForcedSettlementRequest) int64 { return r.ExecutesAt },
		func(a, b int64) bool { return a < b })
	c.ForcedSettlements.AddIndex(c.ForcedSettlementByTime)

	c.CollateralBids = store.NewTable[objects.CollateralBidRecord]()
	c.CollateralBidBySymbol = store.NewOrderedIndex(func(r *objects.CollateralBidRecord) string { return r.Symbol },
		func(a, b string) bool { return a < b })
	c.CollateralBids.AddIndex(c.CollateralBidBySymbol)

	return c
}

func pairLess(a, b Pair) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	return a.B < b.B
}

func ownerIDLess(a, b OwnerID) bool {
	if a.Owner != b.Owner {
		return a.Owner < b.Owner
	}
	return a.ID < b.ID
}

// Authority implements authority.AccountLookup against the live account
// table, satisfying the one-way dependency authority/ declares.
func (c *Chain) Authority(account string, kind authority.Kind) (authority.Authority, bool) {
	acc, ok := c.AccountsByName.Find(account)
	if !ok {
		return authority.Authority{}, false
	}
	switch kind {
	case authority.Owner:
		return acc.Owner, true
	case authority.Active:
		return acc.Active, true
	default:
		return acc.Posting, true
	}
}

// NextLimitOrderSeq returns a fresh monotonic sequence number for book
// tie-breaking.
func (c *Chain) NextLimitOrderSeq() uint64 {
	c.nextLimitOrderSeq++
	return c.nextLimitOrderSeq
}
