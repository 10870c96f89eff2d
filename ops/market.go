package ops

import "github.com/weyoume/wenode-sub002/objects"

// LimitOrderCreate posts a new limit order.
type LimitOrderCreate struct {
	Owner         string         `wire:"0"`
	OrderID       uint64         `wire:"1"`
	SellSymbol    string         `wire:"2"`
	ReceiveSymbol string         `wire:"3"`
	AmountForSale objects.Amount `wire:"4"`
	ExchangeRate  objects.Price  `wire:"5"`
	Expiration    int64          `wire:"6"`
	Interface     string         `wire:"7"`
	FillOrKill    bool           `wire:"8"`
}

func (o LimitOrderCreate) Kind() Kind           { return KindLimitOrderCreate }
func (o LimitOrderCreate) ActorAccount() string { return o.Owner }

// LimitOrderCancel removes a resting limit order, returning its unfilled
// amount to the owner.
type LimitOrderCancel struct {
	Owner   string `wire:"0"`
	OrderID uint64 `wire:"1"`
}

func (o LimitOrderCancel) Kind() Kind           { return KindLimitOrderCancel }
func (o LimitOrderCancel) ActorAccount() string { return o.Owner }

// MarginOrderOpen borrows from a credit pool and pledges collateral to open
// a leveraged position.
type MarginOrderOpen struct {
	Owner            string         `wire:"0"`
	OrderID          uint64         `wire:"1"`
	DebtSymbol       string         `wire:"2"`
	CollateralSymbol string         `wire:"3"`
	Debt             objects.Amount `wire:"4"`
	Collateral       objects.Amount `wire:"5"`
	StopLoss         objects.Price  `wire:"6"`
	TakeProfit       objects.Price  `wire:"7"`
}

func (o MarginOrderOpen) Kind() Kind           { return KindMarginOrderOpen }
func (o MarginOrderOpen) ActorAccount() string { return o.Owner }

// MarginOrderClose unwinds a margin position, repaying its credit-pool loan
// and returning any residual collateral.
type MarginOrderClose struct {
	Owner   string `wire:"0"`
	OrderID uint64 `wire:"1"`
}

func (o MarginOrderClose) Kind() Kind           { return KindMarginOrderClose }
func (o MarginOrderClose) ActorAccount() string { return o.Owner }

// CallOrderUpdate adjusts a bitasset debt position's collateral/debt or its
// target collateral ratio.
type CallOrderUpdate struct {
	Borrower              string         `wire:"0"`
	DebtSymbol            string         `wire:"1"`
	CollateralSymbol      string         `wire:"2"`
	DeltaCollateral       objects.SignedAmount `wire:"3"`
	DeltaDebt             objects.SignedAmount `wire:"4"`
	TargetCollateralRatio uint32         `wire:"5"`
}

func (o CallOrderUpdate) Kind() Kind           { return KindCallOrderUpdate }
func (o CallOrderUpdate) ActorAccount() string { return o.Borrower }

// AuctionOrderCreate posts an order into the next batch auction interval.
type AuctionOrderCreate struct {
	Owner           string         `wire:"0"`
	SellSymbol      string         `wire:"1"`
	ReceiveSymbol   string         `wire:"2"`
	Amount          objects.Amount `wire:"3"`
	LimitClosePrice objects.Price  `wire:"4"`
	Expiration      int64          `wire:"5"`
}

func (o AuctionOrderCreate) Kind() Kind           { return KindAuctionOrderCreate }
func (o AuctionOrderCreate) ActorAccount() string { return o.Owner }

// OptionOrderCreate deposits collateral into an option pool rung and issues
// the matching option asset.
type OptionOrderCreate struct {
	Owner            string         `wire:"0"`
	OrderID          uint64         `wire:"1"`
	OptionPoolSymbol string         `wire:"2"`
	Expiry           int64          `wire:"3"`
	Strike           objects.Price  `wire:"4"`
	CollateralAsset  string         `wire:"5"`
	Collateral       objects.Amount `wire:"6"`
}

func (o OptionOrderCreate) Kind() Kind           { return KindOptionOrderCreate }
func (o OptionOrderCreate) ActorAccount() string { return o.Owner }

// OptionExercise redeems an in-the-money option order for its settlement
// payout.
type OptionExercise struct {
	Owner   string `wire:"0"`
	OrderID uint64 `wire:"1"`
	Amount  objects.Amount `wire:"2"`
}

func (o OptionExercise) Kind() Kind           { return KindOptionExercise }
func (o OptionExercise) ActorAccount() string { return o.Owner }
