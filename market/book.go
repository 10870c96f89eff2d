// Package market implements the order book and matching engine: limit,
// margin, call, and auction orders sharing one price-time priority
// discipline per asset pair, with a fill_order virtual op, price-time
// priority, and fill-or-kill semantics.
package market

import (
	"math/big"

	"github.com/weyoume/wenode-sub002/objects"
)

// Fill is the fill_order virtual op emitted by the matcher: both sides of
// one match.
type Fill struct {
	TakerOwner    string
	TakerOrderID  uint64
	MakerOwner    string
	MakerOrderID  uint64
	PaysSymbol    string
	PaysAmount    objects.Amount
	ReceiveSymbol string
	ReceiveAmount objects.Amount
}

// rateCmp compares two Price ratios (base:quote, "sell:receive") via
// cross-multiplication so no fractional or floating-point arithmetic enters
// consensus-critical ordering.
func rateCmp(a, b objects.Price) int {
	lhs := new(big.Int).Mul(new(big.Int).SetUint64(a.BaseAmount), new(big.Int).SetUint64(b.QuoteAmount))
	rhs := new(big.Int).Mul(new(big.Int).SetUint64(b.BaseAmount), new(big.Int).SetUint64(a.QuoteAmount))
	return lhs.Cmp(rhs)
}

// BookKey is the declarative secondary-index key for one LimitOrder: the pair
// it trades plus its price-time ordering. Stored as a value (not computed
// live) so store.OrderedIndex can key directly off it.
type BookKey struct {
	Sell    string
	Receive string
	Rate    objects.Price // sell:receive, ascending = cheaper seller first
	Seq     uint64
}

// LimitOrderKey extracts a LimitOrder's book key for the declared
// store.OrderedIndex over the whole order table.
func LimitOrderKey(o *objects.LimitOrder) BookKey {
	return BookKey{Sell: o.SellSymbol, Receive: o.ReceiveSymbol, Rate: o.ExchangeRate, Seq: o.Seq}
}

// LimitOrderLess implements "ascending price, lower sequence wins ties",
// the order precedence rule, scoped to orders trading the same
// pair; orders of a different pair never compare meaningfully but must
// still produce a total order for the backing sorted slice, so pair name is
// compared first.
func LimitOrderLess(a, b BookKey) bool {
	if a.Sell != b.Sell {
		return a.Sell < b.Sell
	}
	if a.Receive != b.Receive {
		return a.Receive < b.Receive
	}
	if c := rateCmp(a.Rate, b.Rate); c != 0 {
		return c < 0
	}
	return a.Seq < b.Seq
}

// samePair reports whether k trades sell-for-receive.
func samePair(k BookKey, sell, receive string) bool {
	return k.Sell == sell && k.Receive == receive
}

// Crosses reports whether a taker offering `sell` for `receive` at
// takerRate can match against a maker on the opposing book (selling
// `receive` for `sell`) at makerRate. takerRate/makerRate are both
// expressed "sell:receive" from their own order's perspective, so a taker
// giving takerRate.Base of `sell` wants at least takerRate.Quote of
// `receive` back, while a maker giving makerRate.Base of `receive` wants at
// least makerRate.Quote of `sell`. They cross when the `receive`-per-`sell`
// rate the maker is willing to give (makerRate.Base/makerRate.Quote) is at
// least the `receive`-per-`sell` rate the taker demands
// (takerRate.Quote/takerRate.Base):
//
//	makerRate.Base/makerRate.Quote >= takerRate.Quote/takerRate.Base
//	makerRate.Base*takerRate.Base  >= takerRate.Quote*makerRate.Quote
func Crosses(takerRate, makerRate objects.Price) bool {
	lhs := new(big.Int).Mul(big.NewInt(int64(makerRate.BaseAmount)), big.NewInt(int64(takerRate.BaseAmount)))
	rhs := new(big.Int).Mul(big.NewInt(int64(takerRate.QuoteAmount)), big.NewInt(int64(makerRate.QuoteAmount)))
	return lhs.Cmp(rhs) >= 0
}
